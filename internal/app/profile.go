package app

import (
	"context"
	"log"
	"slices"
	"strings"
	"time"

	"sarthi-backend/internal/models"
	"sarthi-backend/internal/reports"

	"github.com/samber/lo"
)

const (
	DefaultFrequency   = "Daily"
	PrescribedDosage   = "As prescribed"
	MockReportTitle    = "New Lab Result"
	MockReportDoctor   = "Dr. Mockup"
	onboardingFallback = "User"
)

// Profile mengembalikan salinan profil pasien
func (s *Store) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.profile.Clone()
}

// CompleteOnboarding menggabungkan isian onboarding dengan default.
// Timeline dan laporan dikosongkan, lalu laporan demo diisi kalau masih kosong.
func (s *Store) CompleteOnboarding(ctx context.Context, in models.OnboardingInput) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePatient(); err != nil {
		return models.UserProfile{}, err
	}

	p := s.profile.Clone()
	p.Name = lo.Ternary(strings.TrimSpace(in.Name) != "", strings.TrimSpace(in.Name), onboardingFallback)
	p.Age = lo.Ternary(in.Age > 0, in.Age, 25)
	p.Gender = lo.Ternary(in.Gender != "", in.Gender, "Male")
	p.MedicalHistory = lo.Ternary(in.MedicalHistory != "", in.MedicalHistory, "None")
	p.MedicalEvents = []models.MedicalEvent{}
	p.Reports = demoReports()
	p.Allergies = lo.Compact(lo.Map(in.Allergies, func(a string, _ int) string { return strings.TrimSpace(a) }))
	p.Medications = lo.FilterMap(in.Medications, func(name string, _ int) (models.Medication, bool) {
		name = strings.TrimSpace(name)
		return models.Medication{ID: s.newID(), Name: name, Dosage: PrescribedDosage, Frequency: DefaultFrequency}, name != ""
	})

	contact := models.EmergencyContact{}
	if in.EmergencyContact != nil {
		contact = *in.EmergencyContact
	}
	p.EmergencyContact = models.EmergencyContact{
		Name:     lo.Ternary(contact.Name != "", contact.Name, "Emergency Contact"),
		Phone:    lo.Ternary(contact.Phone != "", contact.Phone, "112"),
		Relation: lo.Ternary(contact.Relation != "", contact.Relation, "Family"),
	}

	s.profile = p
	if s.session != nil {
		s.session.IsNewUser = false
	}
	s.persistProfile(ctx)
	return p.Clone(), nil
}

// UpdateBasicInfo mengganti nama, umur, gender dan kontak darurat
func (s *Store) UpdateBasicInfo(ctx context.Context, in models.UpdateProfileInput) (models.UserProfile, error) {
	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		if strings.TrimSpace(in.Name) == "" {
			return ErrMissingField
		}
		p.Name = strings.TrimSpace(in.Name)
		p.Age = in.Age
		p.Gender = in.Gender
		p.EmergencyContact = in.EmergencyContact
		return nil
	})
}

func (s *Store) AddMedication(ctx context.Context, in models.AddMedicationInput) (models.UserProfile, error) {
	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		name, dosage := strings.TrimSpace(in.Name), strings.TrimSpace(in.Dosage)
		if name == "" || dosage == "" {
			return ErrMissingField
		}
		freq := strings.TrimSpace(in.Frequency)
		p.Medications = append(p.Medications, models.Medication{
			ID:        s.newID(),
			Name:      name,
			Dosage:    dosage,
			Frequency: lo.Ternary(freq != "", freq, DefaultFrequency),
		})
		return nil
	})
}

func (s *Store) RemoveMedication(ctx context.Context, id string) (models.UserProfile, error) {
	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		kept := lo.Reject(p.Medications, func(m models.Medication, _ int) bool { return m.ID == id })
		if len(kept) == len(p.Medications) {
			return ErrItemNotFound
		}
		p.Medications = kept
		return nil
	})
}

// MarkMedicationTaken hanya set taken=true; tidak ada reset harian
func (s *Store) MarkMedicationTaken(ctx context.Context, id string) (models.UserProfile, error) {
	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		_, i, ok := lo.FindIndexOf(p.Medications, func(m models.Medication) bool { return m.ID == id })
		if !ok {
			return ErrItemNotFound
		}
		p.Medications[i].Taken = true
		return nil
	})
}

func (s *Store) AddAllergy(ctx context.Context, name string) (models.UserProfile, error) {
	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrMissingField
		}
		p.Allergies = append(p.Allergies, name)
		return nil
	})
}

// RemoveAllergy menghapus berdasarkan posisi di list
func (s *Store) RemoveAllergy(ctx context.Context, index int) (models.UserProfile, error) {
	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		if index < 0 || index >= len(p.Allergies) {
			return ErrItemNotFound
		}
		p.Allergies = slices.Delete(p.Allergies, index, index+1)
		return nil
	})
}

// AddMedicalEvent menambah event manual, timeline diurutkan tanggal terbaru dulu
func (s *Store) AddMedicalEvent(ctx context.Context, in models.AddMedicalEventInput) (models.UserProfile, error) {
	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Date) == "" {
			return ErrMissingField
		}
		ev := models.MedicalEvent{
			ID:          s.newID(),
			Date:        in.Date,
			Title:       strings.TrimSpace(in.Title),
			Description: in.Description,
			Type:        lo.Ternary(in.Type.Valid(), in.Type, models.EventGeneral),
			DoctorName:  in.DoctorName,
			Location:    in.Location,
		}
		p.MedicalEvents = append(p.MedicalEvents, ev)
		sortEventsNewestFirst(p.MedicalEvents)
		return nil
	})
}

func (s *Store) RemoveMedicalEvent(ctx context.Context, id string) (models.UserProfile, error) {
	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		kept := lo.Reject(p.MedicalEvents, func(e models.MedicalEvent, _ int) bool { return e.ID == id })
		if len(kept) == len(p.MedicalEvents) {
			return ErrItemNotFound
		}
		p.MedicalEvents = kept
		return nil
	})
}

// AddReport menyimpan file (kalau ada) lalu menaruh laporan di urutan pertama.
// Tanpa file, laporan mock dengan URL "#" tetap dibuat.
func (s *Store) AddReport(ctx context.Context, in models.AddReportInput) (models.UserProfile, error) {
	url := reports.PlaceholderURL
	if in.Data != "" {
		data, contentType, err := reports.DecodePayload(in.Data, in.ContentType)
		if err != nil {
			return models.UserProfile{}, err
		}

		s.mu.Lock()
		owner := s.profile.ID
		s.mu.Unlock()

		url, err = s.reports.Store(ctx, owner, reports.Upload{FileName: in.FileName, ContentType: contentType, Data: data})
		if err != nil {
			log.Printf("[Store] Upload laporan gagal: %v", err)
			return models.UserProfile{}, err
		}
	}

	return s.mutateProfile(ctx, func(p *models.UserProfile) error {
		report := models.MedicalReport{
			ID:         s.newID(),
			Title:      lo.Ternary(strings.TrimSpace(in.Title) != "", strings.TrimSpace(in.Title), MockReportTitle),
			Date:       s.today(),
			Type:       lo.Ternary(in.Type != "", in.Type, models.ReportLab),
			DoctorName: lo.Ternary(in.DoctorName != "", in.DoctorName, MockReportDoctor),
			URL:        url,
		}
		p.Reports = append([]models.MedicalReport{report}, p.Reports...)
		return nil
	})
}

// mutateProfile menjalankan fn pada salinan profil lalu mengganti profil secara utuh
func (s *Store) mutateProfile(ctx context.Context, fn func(p *models.UserProfile) error) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePatient(); err != nil {
		return models.UserProfile{}, err
	}

	p := s.profile.Clone()
	if err := fn(&p); err != nil {
		return models.UserProfile{}, err
	}

	s.profile = p
	s.persistProfile(ctx)
	return p.Clone(), nil
}

// Tanggal yang gagal di-parse ditaruh paling akhir
func sortEventsNewestFirst(evs []models.MedicalEvent) {
	slices.SortStableFunc(evs, func(a, b models.MedicalEvent) int {
		ta, errA := time.Parse(dateLayout, a.Date)
		tb, errB := time.Parse(dateLayout, b.Date)
		switch {
		case errA != nil && errB != nil:
			return 0
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		}
		return tb.Compare(ta)
	})
}

func demoReports() []models.MedicalReport {
	return []models.MedicalReport{
		{ID: "101", Title: "Complete Blood Count (CBC)", Date: "2023-11-15", Type: models.ReportLab, DoctorName: "City PathLabs", URL: "#"},
		{ID: "102", Title: "Eye Vision Prescription", Date: "2023-08-10", Type: models.ReportPrescription, DoctorName: "Dr. Aditi Gupta", URL: "#"},
		{ID: "103", Title: "Discharge Summary - Surgery", Date: "2022-12-08", Type: models.ReportCertificate, DoctorName: "Apollo Hospital", URL: "#"},
		{ID: "104", Title: "Allergy Test Panel", Date: "2022-03-15", Type: models.ReportLab, DoctorName: "Dr. Meera Reddy", URL: "#"},
		{ID: "105", Title: "COVID-19 Vaccination Cert", Date: "2021-06-20", Type: models.ReportCertificate, DoctorName: "CoWin", URL: "#"},
		{ID: "106", Title: "Chest X-Ray PA View", Date: "2020-09-12", Type: models.ReportImaging, DoctorName: "City Imaging Center", URL: "#"},
	}
}
