package models

// Role membedakan identitas yang sedang login
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// Language dipakai untuk prompt AI dan sapaan triage
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// Normalize returns English for anything that is not Hindi.
func (l Language) Normalize() Language {
	if l == LanguageHindi {
		return LanguageHindi
	}
	return LanguageEnglish
}

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// UserProfile adalah profil pasien beserta rekam medisnya
type UserProfile struct {
	ID               string           `json:"id,omitempty"`
	Email            string           `json:"email,omitempty"`
	Name             string           `json:"name"`
	Age              int              `json:"age"`
	Gender           string           `json:"gender"`
	MedicalHistory   string           `json:"medicalHistory"` // Summary
	MedicalEvents    []MedicalEvent   `json:"medicalEvents"`  // Timeline
	Reports          []MedicalReport  `json:"reports"`
	Allergies        []string         `json:"allergies"`
	Medications      []Medication     `json:"medications"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

// EmptyProfile is the logged-out template.
func EmptyProfile() UserProfile {
	return UserProfile{
		MedicalEvents: []MedicalEvent{},
		Reports:       []MedicalReport{},
		Allergies:     []string{},
		Medications:   []Medication{},
	}
}

// Normalize mengganti slice nil dengan slice kosong (hasil decode JSON "null")
func (p *UserProfile) Normalize() {
	if p.MedicalEvents == nil {
		p.MedicalEvents = []MedicalEvent{}
	}
	if p.Reports == nil {
		p.Reports = []MedicalReport{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.Medications == nil {
		p.Medications = []Medication{}
	}
}

// Clone returns a copy that shares no slices with p.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.MedicalEvents = append([]MedicalEvent{}, p.MedicalEvents...)
	out.Reports = append([]MedicalReport{}, p.Reports...)
	out.Allergies = append([]string{}, p.Allergies...)
	out.Medications = append([]Medication{}, p.Medications...)
	return out
}

// MedicationNames dipakai untuk ringkasan profil ke AI
func (p UserProfile) MedicationNames() []string {
	names := make([]string, 0, len(p.Medications))
	for _, m := range p.Medications {
		names = append(names, m.Name)
	}
	return names
}

// Struct inputan edit profil dasar
type UpdateProfileInput struct {
	Name             string           `json:"name" binding:"required"`
	Age              int              `json:"age" binding:"gte=0,lte=150"`
	Gender           string           `json:"gender"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

// Struct inputan onboarding (semua opsional, default diisi server)
type OnboardingInput struct {
	Name             string            `json:"name"`
	Age              int               `json:"age" binding:"gte=0,lte=150"`
	Gender           string            `json:"gender"`
	MedicalHistory   string            `json:"medicalHistory"`
	Allergies        []string          `json:"allergies"`
	Medications      []string          `json:"medications"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
}
