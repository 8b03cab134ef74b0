package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"sarthi-backend/internal/advisor"
	"sarthi-backend/internal/appointment"
	"sarthi-backend/internal/catalog"
	"sarthi-backend/internal/events"
	"sarthi-backend/internal/models"
	"sarthi-backend/internal/notification"
	"sarthi-backend/internal/payment"
	"sarthi-backend/internal/reports"
	"sarthi-backend/internal/session"
	"sarthi-backend/internal/triage"

	"github.com/google/uuid"
)

var (
	ErrNotPatient   = errors.New("no patient is logged in")
	ErrNotDoctor    = errors.New("no doctor is logged in")
	ErrMissingField = errors.New("required field is empty")
	ErrItemNotFound = errors.New("item not found")
)

const dateLayout = "2006-01-02"

// Deps adalah semua dependency Store; yang opsional boleh nil
type Deps struct {
	Sessions  *session.Service
	Advisor   advisor.Advisor
	Catalog   *catalog.Catalog
	Ledger    *appointment.Ledger
	Feed      *notification.Feed
	Publisher events.Publisher
	Reports   reports.Storage
	Payments  *payment.Gateway
	Narrator  triage.Narrator
	Now       func() time.Time
	NewID     func() string
}

// Store memegang seluruh state aplikasi (satu pasien, satu dokter aktif).
// Semua mutasi lewat satu mutex sehingga update beberapa record sekaligus tetap atomik.
type Store struct {
	mu sync.Mutex

	sessions  *session.Service
	advisor   advisor.Advisor
	catalog   *catalog.Catalog
	ledger    *appointment.Ledger
	feed      *notification.Feed
	publisher events.Publisher
	reports   reports.Storage
	payments  *payment.Gateway
	triage    *triage.Conversation
	now       func() time.Time
	newID     func() string

	role    models.Role
	session *models.Session
	profile models.UserProfile
	doctor  models.Doctor
}

func New(d Deps) *Store {
	s := &Store{
		sessions:  d.Sessions,
		advisor:   d.Advisor,
		catalog:   d.Catalog,
		ledger:    d.Ledger,
		feed:      d.Feed,
		publisher: d.Publisher,
		reports:   d.Reports,
		payments:  d.Payments,
		now:       d.Now,
		newID:     d.NewID,
		profile:   models.EmptyProfile(),
		doctor:    session.DemoDoctor(),
	}

	if s.advisor == nil {
		s.advisor = advisor.Unconfigured{}
	}
	if s.catalog == nil {
		s.catalog = catalog.New(catalog.DemoDoctors())
	}
	if s.ledger == nil {
		s.ledger = appointment.NewLedger(appointment.DemoAppointments())
	}
	if s.feed == nil {
		s.feed = notification.NewFeed(notification.DemoNotifications())
	}
	if s.publisher == nil {
		s.publisher = events.Nop{}
	}
	if s.reports == nil {
		s.reports = reports.Placeholder{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	s.triage = triage.NewConversation(s.advisor, "")
	if d.Narrator != nil {
		s.triage.SetNarrator(d.Narrator)
	}
	return s
}

// Restore memuat session tersimpan saat startup (tanpa tour/onboarding ulang)
func (s *Store) Restore(ctx context.Context) (*models.Session, error) {
	sess, err := s.sessions.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	s.mu.Lock()
	s.apply(*sess)
	s.mu.Unlock()

	log.Printf("[Store] Session %s (%s) dipulihkan", sess.UserID(), sess.Role)
	return sess, nil
}

func (s *Store) Login(ctx context.Context, email string, role models.Role) (models.Session, error) {
	sess, err := s.sessions.Login(ctx, email, role)
	if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	s.apply(sess)
	s.mu.Unlock()
	return sess, nil
}

func (s *Store) Signup(ctx context.Context, name, email string, role models.Role) (models.Session, error) {
	sess, err := s.sessions.Signup(ctx, name, email, role)
	if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	s.apply(sess)
	s.mu.Unlock()
	return sess, nil
}

// Session mengembalikan session aktif di memori
func (s *Store) Session() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	out := *s.session
	return &out
}

// Logout menghapus session tersimpan dan mengembalikan profil ke template kosong
func (s *Store) Logout(ctx context.Context) error {
	if err := s.sessions.Logout(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.role = ""
	s.session = nil
	s.profile = models.EmptyProfile()
	lang := s.triage.Language()
	s.mu.Unlock()

	s.triage.Reset(lang, "")
	return nil
}

// apply dipanggil dengan s.mu terkunci
func (s *Store) apply(sess models.Session) {
	stored := sess
	s.session = &stored
	s.role = sess.Role

	switch sess.Role {
	case models.RolePatient:
		if sess.Patient != nil {
			s.profile = sess.Patient.Clone()
			s.profile.Normalize()
		}
		s.triage.Reset(s.triage.Language(), s.profile.Name)
	case models.RoleDoctor:
		if sess.Doctor != nil {
			s.doctor = *sess.Doctor
		}
		// Dokter membuka rekam medis pasien demo kalau belum ada pasien di state
		if s.profile.Name == "" {
			s.profile = session.DemoPatient()
		}
	}
}

// persistProfile menyalin profil terbaru ke session tersimpan; dipanggil dengan s.mu terkunci
func (s *Store) persistProfile(ctx context.Context) {
	if s.session == nil || s.role != models.RolePatient {
		return
	}
	p := s.profile.Clone()
	s.session.Patient = &p
	if err := s.sessions.Save(ctx, *s.session); err != nil {
		log.Printf("[Store] Gagal simpan session: %v", err)
	}
}

func (s *Store) persistDoctor(ctx context.Context) {
	if s.session == nil || s.role != models.RoleDoctor {
		return
	}
	d := s.doctor
	s.session.Doctor = &d
	if err := s.sessions.Save(ctx, *s.session); err != nil {
		log.Printf("[Store] Gagal simpan session: %v", err)
	}
}

func (s *Store) requirePatient() error {
	if s.role != models.RolePatient {
		return ErrNotPatient
	}
	return nil
}

func (s *Store) requireDoctor() error {
	if s.role != models.RoleDoctor {
		return ErrNotDoctor
	}
	return nil
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

func (s *Store) publish(ctx context.Context, kind events.Kind, appt models.Appointment) {
	ev := events.AppointmentEvent{Kind: kind, Appointment: appt, OccurredAt: s.now().UTC()}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		log.Printf("[Store] Gagal publish %s: %v", kind, err)
	}
}

// ActiveToken dipakai middleware auth untuk menolak token dari session lama
func (s *Store) ActiveToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ""
	}
	return s.session.Token
}
