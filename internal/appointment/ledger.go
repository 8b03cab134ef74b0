package appointment

import (
	"errors"
	"sync"

	"sarthi-backend/internal/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const BookingNote = "Booked via Sarthi AI"

var (
	ErrNotFound       = errors.New("appointment not found")
	ErrTerminalStatus = errors.New("appointment is already completed or cancelled")
	ErrNotCompleted   = errors.New("only completed appointments can be rated")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrInvalidType    = errors.New("type must be video or in-person")
)

// Ledger menyimpan daftar appointment di memori.
// Setiap mutasi mengganti record secara utuh; record tidak pernah dihapus.
type Ledger struct {
	mu    sync.RWMutex
	items []models.Appointment
	newID func() string
}

func NewLedger(seed []models.Appointment) *Ledger {
	items := make([]models.Appointment, len(seed))
	copy(items, seed)
	return &Ledger{items: items, newID: uuid.NewString}
}

// Book membuat appointment baru berstatus pending.
// Tidak ada pengecekan bentrok jadwal.
func (l *Ledger) Book(doctor models.Doctor, date, time string, kind models.ConsultationType, notes string) (models.Appointment, error) {
	if !kind.Valid() {
		return models.Appointment{}, ErrInvalidType
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.newID()
	for l.indexOf(id) >= 0 {
		id = l.newID()
	}

	appt := models.Appointment{
		ID:         id,
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       date,
		Time:       time,
		Notes:      notes,
		Type:       kind,
		Status:     models.StatusPending,
	}
	l.items = append(l.items, appt)
	return appt, nil
}

// Accept: pending -> upcoming. Status lain diabaikan tanpa error (changed=false).
func (l *Ledger) Accept(id string) (models.Appointment, bool, error) {
	return l.transition(id, func(a models.Appointment) (models.Appointment, bool, error) {
		if a.Status != models.StatusPending {
			return a, false, nil
		}
		a.Status = models.StatusUpcoming
		return a, true, nil
	})
}

// Decline: pending|upcoming -> cancelled. Record terminal diabaikan (changed=false).
func (l *Ledger) Decline(id string) (models.Appointment, bool, error) {
	return l.transition(id, func(a models.Appointment) (models.Appointment, bool, error) {
		if a.Status.Terminal() {
			return a, false, nil
		}
		a.Status = models.StatusCancelled
		return a, true, nil
	})
}

// Complete: pending|upcoming -> completed, sekaligus simpan diagnosis dan resep
func (l *Ledger) Complete(id, diagnosis string, prescription []string) (models.Appointment, error) {
	appt, _, err := l.transition(id, func(a models.Appointment) (models.Appointment, bool, error) {
		if a.Status.Terminal() {
			return a, false, ErrTerminalStatus
		}
		a.Status = models.StatusCompleted
		a.Diagnosis = diagnosis
		a.Prescription = append([]string{}, prescription...)
		return a, true, nil
	})
	return appt, err
}

// Rate hanya untuk appointment completed; status tidak berubah
func (l *Ledger) Rate(id string, rating int, review string) (models.Appointment, error) {
	if rating < 1 || rating > 5 {
		return models.Appointment{}, ErrInvalidRating
	}

	appt, _, err := l.transition(id, func(a models.Appointment) (models.Appointment, bool, error) {
		if a.Status != models.StatusCompleted {
			return a, false, ErrNotCompleted
		}
		a.UserRating = rating
		a.UserReview = review
		return a, true, nil
	})
	return appt, err
}

func (l *Ledger) Get(id string) (models.Appointment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOf(id)
	if i < 0 {
		return models.Appointment{}, ErrNotFound
	}
	return clone(l.items[i]), nil
}

// All mengembalikan salinan semua appointment sesuai urutan booking
func (l *Ledger) All() []models.Appointment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.Map(l.items, func(a models.Appointment, _ int) models.Appointment { return clone(a) })
}

func (l *Ledger) ForDoctor(doctorID string) []models.Appointment {
	return lo.Filter(l.All(), func(a models.Appointment, _ int) bool { return a.DoctorID == doctorID })
}

func (l *Ledger) ByStatus(status models.AppointmentStatus) []models.Appointment {
	return lo.Filter(l.All(), func(a models.Appointment, _ int) bool { return a.Status == status })
}

func (l *Ledger) transition(id string, fn func(models.Appointment) (models.Appointment, bool, error)) (models.Appointment, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return models.Appointment{}, false, ErrNotFound
	}

	next, changed, err := fn(clone(l.items[i]))
	if err != nil {
		return clone(l.items[i]), false, err
	}
	if changed {
		l.items[i] = next
	}
	return clone(next), changed, nil
}

func (l *Ledger) indexOf(id string) int {
	for i, a := range l.items {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func clone(a models.Appointment) models.Appointment {
	if a.Prescription != nil {
		a.Prescription = append([]string{}, a.Prescription...)
	}
	return a
}
