package app

import (
	"context"
	"log"
	"strings"

	"sarthi-backend/internal/advisor"
	"sarthi-backend/internal/models"
	"sarthi-backend/internal/triage"
)

// Specialists adalah hasil "find specialists" setelah triage selesai
type Specialists struct {
	Result  models.TriageResult `json:"result"`
	Doctors []models.Doctor     `json:"doctors"`
}

// SendTriage mengirim satu giliran pasien; panggilan AI berjalan di luar lock store
func (s *Store) SendTriage(ctx context.Context, in models.TriageMessageInput) (models.Message, error) {
	s.mu.Lock()
	if err := s.requirePatient(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	profile := s.profile.Clone()
	s.mu.Unlock()

	sub := triage.Submission{Text: in.Text}
	if strings.TrimSpace(in.Image) != "" {
		img, err := advisor.DecodeDataURL(in.Image)
		if err != nil {
			return nil, err
		}
		sub.Image = &img
	}

	return s.triage.Submit(ctx, profile, sub)
}

func (s *Store) TriageSnapshot() triage.Snapshot {
	return s.triage.Snapshot()
}

// ResetTriage memulai percakapan baru, bahasa kosong = bahasa sebelumnya
func (s *Store) ResetTriage(lang models.Language) triage.Snapshot {
	s.mu.Lock()
	name := s.profile.Name
	s.mu.Unlock()

	if lang == "" {
		lang = s.triage.Language()
	}
	s.triage.Reset(lang, name)
	return s.triage.Snapshot()
}

// TriageSpecialists meneruskan spesialisasi hasil triage ke filter katalog
func (s *Store) TriageSpecialists(videoOnly bool) (Specialists, error) {
	result, err := s.triage.Recommendation()
	if err != nil {
		return Specialists{}, err
	}
	return Specialists{Result: result, Doctors: s.catalog.Search(result.Specialty, videoOnly)}, nil
}

// HealthSummary tidak pernah gagal: error AI diganti teks default
func (s *Store) HealthSummary(ctx context.Context, lang models.Language) (string, error) {
	profile, err := s.patientProfile()
	if err != nil {
		return "", err
	}

	text, err := s.advisor.RequestSummary(ctx, profile, lang.Normalize())
	if err != nil {
		log.Printf("[Store] Summary gagal: %v", err)
		return advisor.SummaryFailed, nil
	}
	if strings.TrimSpace(text) == "" {
		return advisor.SummaryUnavailable, nil
	}
	return text, nil
}

func (s *Store) HealthTip(ctx context.Context, lang models.Language) (string, error) {
	profile, err := s.patientProfile()
	if err != nil {
		return "", err
	}
	return s.tip(ctx, profile, lang), nil
}

// DailyTip dipakai job cron; bahasa ikut bahasa triage terakhir
func (s *Store) DailyTip(ctx context.Context) (string, bool) {
	profile, err := s.patientProfile()
	if err != nil {
		return "", false
	}
	return s.tip(ctx, profile, s.triage.Language()), true
}

// ParsePrescription membaca foto resep; error diteruskan ke pemanggil
func (s *Store) ParsePrescription(ctx context.Context, dataURL string) (models.PrescriptionData, error) {
	if err := s.doctorOnly(); err != nil {
		return models.PrescriptionData{}, err
	}

	img, err := advisor.DecodeDataURL(dataURL)
	if err != nil {
		return models.PrescriptionData{}, err
	}
	return s.advisor.RequestPrescriptionParse(ctx, img)
}

func (s *Store) tip(ctx context.Context, profile models.UserProfile, lang models.Language) string {
	text, err := s.advisor.RequestTip(ctx, profile, lang.Normalize())
	if err != nil {
		log.Printf("[Store] Tip gagal: %v", err)
		return advisor.TipFailed
	}
	if strings.TrimSpace(text) == "" {
		return advisor.TipEmpty
	}
	return strings.TrimSpace(text)
}

func (s *Store) patientProfile() (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePatient(); err != nil {
		return models.UserProfile{}, err
	}
	return s.profile.Clone(), nil
}
