package catalog

import (
	"errors"
	"strings"
	"sync"

	"sarthi-backend/internal/models"

	"github.com/samber/lo"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// Catalog menyimpan daftar dokter yang bisa dibooking
type Catalog struct {
	mu      sync.RWMutex
	doctors []models.Doctor
}

func New(seed []models.Doctor) *Catalog {
	doctors := lo.Map(seed, func(d models.Doctor, _ int) models.Doctor { return clone(d) })
	return &Catalog{doctors: doctors}
}

func (c *Catalog) All() []models.Doctor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return lo.Map(c.doctors, func(d models.Doctor, _ int) models.Doctor { return clone(d) })
}

func (c *Catalog) Get(id string) (models.Doctor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := lo.Find(c.doctors, func(d models.Doctor) bool { return d.ID == id })
	if !ok {
		return models.Doctor{}, ErrDoctorNotFound
	}
	return clone(d), nil
}

// Update mengganti entri dengan id yang sama (edit profil oleh dokter)
func (c *Catalog) Update(doctor models.Doctor) (models.Doctor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, i, ok := lo.FindIndexOf(c.doctors, func(d models.Doctor) bool { return d.ID == doctor.ID })
	if !ok {
		return models.Doctor{}, ErrDoctorNotFound
	}
	c.doctors[i] = clone(doctor)
	return clone(doctor), nil
}

// Search = Filter atas isi katalog saat ini
func (c *Catalog) Search(specialty string, videoOnly bool) []models.Doctor {
	return Filter(c.All(), specialty, videoOnly)
}

// Filter menyaring dokter berdasarkan spesialisasi dan ketersediaan video.
// General Physician selalu ikut lolos filter spesialisasi. Urutan input dipertahankan.
func Filter(doctors []models.Doctor, specialty string, videoOnly bool) []models.Doctor {
	needle := strings.ToLower(strings.TrimSpace(specialty))

	return lo.Filter(doctors, func(d models.Doctor, _ int) bool {
		if videoOnly && !d.IsVideoEnabled {
			return false
		}
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(d.Specialty), needle) || d.Specialty == models.GeneralPhysician
	})
}

func clone(d models.Doctor) models.Doctor {
	if d.Qualifications != nil {
		d.Qualifications = append([]string{}, d.Qualifications...)
	}
	return d
}
