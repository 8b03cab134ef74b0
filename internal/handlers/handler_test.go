package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"sarthi-backend/internal/advisor"
	"sarthi-backend/internal/app"
	"sarthi-backend/internal/appointment"
	"sarthi-backend/internal/catalog"
	"sarthi-backend/internal/session"
	"sarthi-backend/internal/triage"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{session.ErrInvalidCredentials, http.StatusUnauthorized},
		{app.ErrNotDoctor, http.StatusForbidden},
		{fmt.Errorf("lookup: %w", appointment.ErrNotFound), http.StatusNotFound},
		{catalog.ErrDoctorNotFound, http.StatusNotFound},
		{appointment.ErrTerminalStatus, http.StatusConflict},
		{triage.ErrTurnInFlight, http.StatusConflict},
		{triage.ErrEmptySubmission, http.StatusBadRequest},
		{appointment.ErrInvalidRating, http.StatusBadRequest},
		{&advisor.Error{Op: advisor.OpPrescription, Err: errors.New("timeout")}, http.StatusBadGateway},
		{errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
