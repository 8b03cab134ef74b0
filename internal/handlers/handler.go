package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"sarthi-backend/internal/advisor"
	"sarthi-backend/internal/app"
	"sarthi-backend/internal/appointment"
	"sarthi-backend/internal/catalog"
	"sarthi-backend/internal/models"
	"sarthi-backend/internal/payment"
	"sarthi-backend/internal/reports"
	"sarthi-backend/internal/session"
	"sarthi-backend/internal/triage"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handler membungkus Store untuk semua endpoint HTTP
type Handler struct {
	store *app.Store
}

func New(store *app.Store) *Handler {
	return &Handler{store: store}
}

// fail memetakan error domain ke status HTTP
func fail(c *gin.Context, message string, err error) {
	utils.APIError(c, statusFor(err), message, err)
}

func statusFor(err error) int {
	var advErr *advisor.Error

	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrNotPatient), errors.Is(err, app.ErrNotDoctor):
		return http.StatusForbidden
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, catalog.ErrDoctorNotFound),
		errors.Is(err, app.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, appointment.ErrTerminalStatus),
		errors.Is(err, appointment.ErrNotCompleted),
		errors.Is(err, triage.ErrTurnInFlight),
		errors.Is(err, triage.ErrConversationClosed),
		errors.Is(err, triage.ErrNoVerdict),
		errors.Is(err, context.Canceled):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidRole),
		errors.Is(err, app.ErrMissingField),
		errors.Is(err, appointment.ErrInvalidRating),
		errors.Is(err, appointment.ErrInvalidType),
		errors.Is(err, triage.ErrEmptySubmission),
		errors.Is(err, advisor.ErrInvalidImage),
		errors.Is(err, reports.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, payment.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, payment.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &advErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func queryBool(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}

func queryLanguage(c *gin.Context) models.Language {
	return models.Language(c.DefaultQuery("lang", string(models.LanguageEnglish))).Normalize()
}
