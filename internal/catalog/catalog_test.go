package catalog

import (
	"testing"

	"sarthi-backend/internal/models"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(doctors []models.Doctor) []string {
	return lo.Map(doctors, func(d models.Doctor, _ int) string { return d.Name })
}

func TestFilter(t *testing.T) {
	doctors := DemoDoctors()

	tests := []struct {
		name      string
		specialty string
		videoOnly bool
		want      []string
	}{
		{"empty keeps all", "", false, names(doctors)},
		{"case insensitive substring plus GP", "cardio", false, []string{"Dr. Anita Desai", "Dr. Rajesh Kumar"}},
		{"video only drops GP", "Cardiologist", true, []string{"Dr. Anita Desai"}},
		{"no match still keeps GP", "Oncologist", false, []string{"Dr. Rajesh Kumar"}},
		{"no match with video", "Oncologist", true, []string{}},
		{"video only without specialty", "", true, []string{"Dr. Anita Desai", "Dr. Meera Reddy", "Dr. Vikram Singh", "Dr. Arjun Gupta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(doctors, tt.specialty, tt.videoOnly)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestUpdateReplacesByID(t *testing.T) {
	c := New(DemoDoctors())

	d, err := c.Get("4")
	require.NoError(t, err)
	d.Price = "₹1800"
	d.IsVideoEnabled = false

	_, err = c.Update(d)
	require.NoError(t, err)

	got, err := c.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "₹1800", got.Price)
	assert.NotContains(t, names(c.Search("Neuro", true)), "Dr. Vikram Singh")
	assert.Len(t, c.All(), 5)
}

func TestUpdateUnknown(t *testing.T) {
	c := New(DemoDoctors())

	_, err := c.Update(models.Doctor{ID: "99"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = c.Get("99")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
