package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"sarthi-backend/internal/appointment"
	"sarthi-backend/internal/events"
	"sarthi-backend/internal/models"
	"sarthi-backend/internal/payment"
	"sarthi-backend/pkg/utils"

	"github.com/samber/lo"
)

const (
	ClinicLocation   = "Apollo Clinic"
	DoctorVisitTitle = "Doctor Visit"
	DefaultBookDate  = "Today"
)

// Dashboard adalah daftar untuk layar dokter
type Dashboard struct {
	Doctor   models.Doctor        `json:"doctor"`
	Pending  []models.Appointment `json:"pending"`
	Upcoming []models.Appointment `json:"upcoming"`
}

func (s *Store) Doctors(specialty string, videoOnly bool) []models.Doctor {
	return s.catalog.Search(specialty, videoOnly)
}

func (s *Store) Doctor(id string) (models.Doctor, error) {
	return s.catalog.Get(id)
}

// CurrentDoctor adalah profil dokter yang sedang login
func (s *Store) CurrentDoctor() models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doctor
}

// UpdateDoctor menyimpan edit profil dokter ke katalog dan ke profil aktif
func (s *Store) UpdateDoctor(ctx context.Context, in models.UpdateDoctorInput) (models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireDoctor(); err != nil {
		return models.Doctor{}, err
	}

	d := s.doctor
	d.Name = in.Name
	d.Specialty = in.Specialty
	d.NextAvailable = in.NextAvailable
	d.Price = in.Price
	d.IsVideoEnabled = in.IsVideoEnabled
	d.About = in.About
	d.Experience = in.Experience
	d.Qualifications = append([]string{}, in.Qualifications...)

	// Dokter hasil signup belum ada di katalog
	if _, err := s.catalog.Update(d); err != nil {
		log.Printf("[Store] Dokter %s tidak ada di katalog, hanya profil yang diupdate", d.ID)
	}

	s.doctor = d
	s.persistDoctor(ctx)
	return d, nil
}

func (s *Store) Appointments(status models.AppointmentStatus) []models.Appointment {
	if status == "" {
		return s.ledger.All()
	}
	return s.ledger.ByStatus(status)
}

// DoctorDashboard: mineOnly=false menampilkan semua request seperti demo aslinya
func (s *Store) DoctorDashboard(mineOnly bool) (Dashboard, error) {
	s.mu.Lock()
	if err := s.requireDoctor(); err != nil {
		s.mu.Unlock()
		return Dashboard{}, err
	}
	doctor := s.doctor
	s.mu.Unlock()

	list := s.ledger.All()
	if mineOnly {
		list = s.ledger.ForDoctor(doctor.ID)
	}

	byStatus := func(st models.AppointmentStatus) []models.Appointment {
		return lo.Filter(list, func(a models.Appointment, _ int) bool { return a.Status == st })
	}
	return Dashboard{
		Doctor:   doctor,
		Pending:  byStatus(models.StatusPending),
		Upcoming: byStatus(models.StatusUpcoming),
	}, nil
}

// Book membuat request appointment dan notifikasi "Request Sent".
// Tanggal default "Today", jam default dari nextAvailable dokter.
func (s *Store) Book(ctx context.Context, in models.BookAppointmentInput) (models.Appointment, error) {
	s.mu.Lock()
	if err := s.requirePatient(); err != nil {
		s.mu.Unlock()
		return models.Appointment{}, err
	}

	doctor, err := s.catalog.Get(in.DoctorID)
	if err != nil {
		s.mu.Unlock()
		return models.Appointment{}, err
	}

	date := lo.Ternary(strings.TrimSpace(in.Date) != "", in.Date, DefaultBookDate)
	slot := lo.Ternary(strings.TrimSpace(in.Time) != "", in.Time, utils.SlotFromNextAvailable(doctor.NextAvailable))

	appt, err := s.ledger.Book(doctor, date, slot, in.Type, appointment.BookingNote)
	if err != nil {
		s.mu.Unlock()
		return models.Appointment{}, err
	}
	s.mu.Unlock()

	s.feed.Push(ctx, "Request Sent", fmt.Sprintf("Appointment request sent to %s", doctor.Name), models.NotificationInfo)
	s.publish(ctx, events.AppointmentBooked, appt)
	return appt, nil
}

func (s *Store) Accept(ctx context.Context, id string) (models.Appointment, error) {
	if err := s.doctorOnly(); err != nil {
		return models.Appointment{}, err
	}

	appt, changed, err := s.ledger.Accept(id)
	if err != nil {
		return models.Appointment{}, err
	}
	if changed {
		s.publish(ctx, events.AppointmentAccepted, appt)
	}
	return appt, nil
}

func (s *Store) Decline(ctx context.Context, id string) (models.Appointment, error) {
	if err := s.doctorOnly(); err != nil {
		return models.Appointment{}, err
	}

	appt, changed, err := s.ledger.Decline(id)
	if err != nil {
		return models.Appointment{}, err
	}
	if changed {
		s.publish(ctx, events.AppointmentDeclined, appt)
	}
	return appt, nil
}

// CompleteConsultation menutup appointment dan memperbarui rekam medis pasien dalam satu langkah:
// event "Doctor Visit" hari ini di depan timeline, obat dari resep digabung berdasarkan nama.
func (s *Store) CompleteConsultation(ctx context.Context, id string, data models.PrescriptionData) (models.Appointment, models.UserProfile, error) {
	if strings.TrimSpace(data.Diagnosis) == "" {
		return models.Appointment{}, models.UserProfile{}, ErrMissingField
	}

	appt, profile, err := s.completeLocked(id, data)
	if err != nil {
		return models.Appointment{}, models.UserProfile{}, err
	}

	s.publish(ctx, events.AppointmentCompleted, appt)
	return appt, profile, nil
}

func (s *Store) completeLocked(id string, data models.PrescriptionData) (models.Appointment, models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireDoctor(); err != nil {
		return models.Appointment{}, models.UserProfile{}, err
	}

	meds := lo.Uniq(lo.Compact(lo.Map(data.Medications, func(m string, _ int) string { return strings.TrimSpace(m) })))

	appt, err := s.ledger.Complete(id, data.Diagnosis, meds)
	if err != nil {
		return models.Appointment{}, models.UserProfile{}, err
	}

	p := s.profile.Clone()
	followUp := lo.Ternary(strings.TrimSpace(data.FollowUp) != "", data.FollowUp, "N/A")
	visit := models.MedicalEvent{
		ID:          s.newID(),
		Date:        s.today(),
		Title:       DoctorVisitTitle,
		Description: fmt.Sprintf("Diagnosis: %s. Follow up: %s", data.Diagnosis, followUp),
		Type:        models.EventDiagnosis,
		DoctorName:  s.doctor.Name,
		Location:    ClinicLocation,
	}
	p.MedicalEvents = append([]models.MedicalEvent{visit}, p.MedicalEvents...)

	known := lo.SliceToMap(p.Medications, func(m models.Medication) (string, bool) { return m.Name, true })
	for _, name := range meds {
		if known[name] {
			continue
		}
		p.Medications = append(p.Medications, models.Medication{
			ID:        s.newID(),
			Name:      name,
			Dosage:    PrescribedDosage,
			Frequency: DefaultFrequency,
		})
		known[name] = true
	}
	s.profile = p
	return appt, p.Clone(), nil
}

// Rate: hanya appointment completed, nilai 1-5, boleh diulang
func (s *Store) Rate(ctx context.Context, id string, rating int, review string) (models.Appointment, error) {
	s.mu.Lock()
	err := s.requirePatient()
	s.mu.Unlock()
	if err != nil {
		return models.Appointment{}, err
	}

	appt, err := s.ledger.Rate(id, rating, strings.TrimSpace(review))
	if err != nil {
		return models.Appointment{}, err
	}
	s.publish(ctx, events.AppointmentRated, appt)
	return appt, nil
}

// Checkout membuat token pembayaran Midtrans untuk biaya konsultasi
func (s *Store) Checkout(id string) (payment.Checkout, error) {
	s.mu.Lock()
	if err := s.requirePatient(); err != nil {
		s.mu.Unlock()
		return payment.Checkout{}, err
	}
	customer := payment.Customer{Name: s.profile.Name, Email: s.profile.Email}
	s.mu.Unlock()

	appt, err := s.ledger.Get(id)
	if err != nil {
		return payment.Checkout{}, err
	}
	doctor, err := s.catalog.Get(appt.DoctorID)
	if err != nil {
		return payment.Checkout{}, err
	}
	return s.payments.CreateCheckout(appt, doctor, customer)
}

func (s *Store) Notifications() []models.Notification {
	return s.feed.All()
}

// UnreadNotifications untuk badge lonceng di header
func (s *Store) UnreadNotifications() int {
	return s.feed.Unread()
}

// PushReminder dipakai job terjadwal
func (s *Store) PushReminder(ctx context.Context, title, message string) {
	s.feed.Push(ctx, title, message, models.NotificationReminder)
}

func (s *Store) doctorOnly() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requireDoctor()
}
