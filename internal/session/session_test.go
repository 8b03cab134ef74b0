package session

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"sarthi-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(repo Repository) *Service {
	s := NewService(repo)
	s.newID = func() string { return "new-id" }
	s.issue = func(userID, role string) (string, error) { return "token-" + role + "-" + userID, nil }
	return s
}

func TestLoginPatientRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryRepository())

	sess, err := svc.Login(ctx, "rahul@demo.com", models.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, sess.Role)
	assert.False(t, sess.IsNewUser)
	require.NotNil(t, sess.Patient)
	assert.Equal(t, "Rahul Sharma", sess.Patient.Name)
	assert.Equal(t, "token-patient-p1", sess.Token)

	got, err := svc.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess, *got)
}

func TestLoginDoctor(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	sess, err := svc.Login(context.Background(), "vikram@demo.com", models.RoleDoctor)
	require.NoError(t, err)
	require.NotNil(t, sess.Doctor)
	assert.Equal(t, "Dr. Vikram Singh", sess.Doctor.Name)
	assert.Nil(t, sess.Patient)
}

func TestLoginRejectsWrongRoleForEmail(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	_, err := svc.Login(context.Background(), "rahul@demo.com", models.RoleDoctor)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "Invalid credentials. Try rahul@demo.com (Patient) or vikram@demo.com (Doctor).", err.Error())

	got, err := svc.GetSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSignupPatientStartsEmpty(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	sess, err := svc.Signup(context.Background(), "Asha Iyer", "asha@example.com", models.RolePatient)
	require.NoError(t, err)
	assert.True(t, sess.IsNewUser)
	assert.Equal(t, "new-id", sess.Patient.ID)
	assert.Equal(t, "Asha Iyer", sess.Patient.Name)
	assert.Empty(t, sess.Patient.MedicalEvents)
	assert.Empty(t, sess.Patient.Medications)
	assert.Empty(t, sess.Patient.Allergies)
	assert.Empty(t, sess.Patient.Reports)
	assert.Equal(t, "", sess.Patient.MedicalHistory)
}

func TestSignupDoctorPrefixesName(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	sess, err := svc.Signup(context.Background(), "Kavya Rao", "kavya@example.com", models.RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Kavya Rao", sess.Doctor.Name)
	assert.Equal(t, "new-id", sess.Doctor.ID)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewMemoryRepository())

	_, err := svc.Login(ctx, "rahul@demo.com", models.RolePatient)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	got, err := svc.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileRepositoryPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, StorageKey+".json"), NewFileRepository(dir).Path())

	sess, err := newTestService(NewFileRepository(dir)).Login(ctx, "vikram@demo.com", models.RoleDoctor)
	require.NoError(t, err)

	reopened := NewFileRepository(dir)
	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess, *got)

	require.NoError(t, reopened.Clear(ctx))
	require.NoError(t, reopened.Clear(ctx))
	got, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionWireShape(t *testing.T) {
	patient := DemoPatient()
	blob, err := json.Marshal(models.Session{Role: models.RolePatient, Token: "t", Patient: &patient})
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &wire))
	assert.Contains(t, wire, "user")
	assert.Contains(t, wire, "role")
	assert.Contains(t, wire, "token")
	assert.Contains(t, wire, "isNewUser")
}

func TestPublicSessionOmitsToken(t *testing.T) {
	patient := DemoPatient()
	sess := models.Session{Role: models.RolePatient, Token: "t", Patient: &patient}

	blob, err := json.Marshal(sess.Public())
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &wire))
	assert.NotContains(t, wire, "token")
	assert.Contains(t, wire, "user")
	assert.Equal(t, "t", sess.Token)
}
