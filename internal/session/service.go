package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/google/uuid"
)

// Pesan ini ditampilkan apa adanya di form login
var ErrInvalidCredentials = errors.New("Invalid credentials. Try rahul@demo.com (Patient) or vikram@demo.com (Doctor).")

var ErrInvalidRole = errors.New("role must be patient or doctor")

// Service adalah session store: login/signup mock, satu session aktif
type Service struct {
	repo  Repository
	newID func() string
	issue func(userID, role string) (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
		issue: utils.GenerateToken,
	}
}

// Login mencocokkan email dengan kredensial demo
func (s *Service) Login(ctx context.Context, email string, role models.Role) (models.Session, error) {
	email = strings.TrimSpace(email)

	var sess models.Session
	switch role {
	case models.RolePatient:
		if !strings.EqualFold(email, DemoPatientEmail) {
			return models.Session{}, ErrInvalidCredentials
		}
		patient := DemoPatient()
		sess = models.Session{Role: role, Patient: &patient}
	case models.RoleDoctor:
		if !strings.EqualFold(email, DemoDoctorEmail) {
			return models.Session{}, ErrInvalidCredentials
		}
		doctor := DemoDoctor()
		sess = models.Session{Role: role, Doctor: &doctor}
	default:
		return models.Session{}, ErrInvalidRole
	}

	return s.persist(ctx, sess)
}

// Signup selalu berhasil, identitas baru dibuat dari template demo
func (s *Service) Signup(ctx context.Context, name, email string, role models.Role) (models.Session, error) {
	name = strings.TrimSpace(name)

	var sess models.Session
	switch role {
	case models.RolePatient:
		patient := DemoPatient()
		patient.ID = s.newID()
		patient.Name = name
		patient.Email = strings.TrimSpace(email)
		patient.MedicalHistory = ""
		patient.MedicalEvents = []models.MedicalEvent{}
		patient.Reports = []models.MedicalReport{}
		patient.Allergies = []string{}
		patient.Medications = []models.Medication{}
		sess = models.Session{Role: role, Patient: &patient, IsNewUser: true}
	case models.RoleDoctor:
		doctor := DemoDoctor()
		doctor.ID = s.newID()
		doctor.Name = "Dr. " + name
		sess = models.Session{Role: role, Doctor: &doctor, IsNewUser: true}
	default:
		return models.Session{}, ErrInvalidRole
	}

	return s.persist(ctx, sess)
}

// GetSession mengembalikan session terakhir, atau nil
func (s *Service) GetSession(ctx context.Context) (*models.Session, error) {
	return s.repo.Load(ctx)
}

// Save menimpa session tersimpan (dipakai saat profil berubah)
func (s *Service) Save(ctx context.Context, sess models.Session) error {
	return s.repo.Save(ctx, sess)
}

func (s *Service) Logout(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *Service) persist(ctx context.Context, sess models.Session) (models.Session, error) {
	token, err := s.issue(sess.UserID(), string(sess.Role))
	if err != nil {
		return models.Session{}, fmt.Errorf("issue token: %w", err)
	}
	sess.Token = token

	if err := s.repo.Save(ctx, sess); err != nil {
		return models.Session{}, err
	}

	log.Printf("[Session] %s %s logged in (new=%t)", sess.Role, sess.UserID(), sess.IsNewUser)
	return sess, nil
}
