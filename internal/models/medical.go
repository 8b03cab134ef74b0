package models

type EventType string

const (
	EventDiagnosis EventType = "diagnosis"
	EventSurgery   EventType = "surgery"
	EventLab       EventType = "lab"
	EventGeneral   EventType = "general"
)

func (t EventType) Valid() bool {
	switch t {
	case EventDiagnosis, EventSurgery, EventLab, EventGeneral:
		return true
	}
	return false
}

type MedicalEvent struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // Format YYYY-MM-DD
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
	DoctorName  string    `json:"doctorName,omitempty"`
	Location    string    `json:"location,omitempty"`
	ReportURL   string    `json:"reportUrl,omitempty"`
}

type ReportType string

const (
	ReportLab          ReportType = "Lab Report"
	ReportPrescription ReportType = "Prescription"
	ReportCertificate  ReportType = "Certificate"
	ReportImaging      ReportType = "Imaging"
)

type MedicalReport struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Date       string     `json:"date"`
	Type       ReportType `json:"type"`
	DoctorName string     `json:"doctorName"`
	URL        string     `json:"url,omitempty"`
}

type Medication struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"` // "Morning", "Night", "2x Daily"
	Taken     bool   `json:"taken"`
}

// PrescriptionData adalah hasil konsultasi (manual atau hasil scan resep)
type PrescriptionData struct {
	Diagnosis   string   `json:"diagnosis" binding:"required"`
	Medications []string `json:"medications"`
	FollowUp    string   `json:"followUp"`
}

type AddMedicationInput struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage" binding:"required"`
	Frequency string `json:"frequency"`
}

type AddAllergyInput struct {
	Name string `json:"name" binding:"required"`
}

type AddMedicalEventInput struct {
	Date        string    `json:"date" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
	DoctorName  string    `json:"doctorName"`
	Location    string    `json:"location"`
}

type AddReportInput struct {
	Title       string     `json:"title"`
	Type        ReportType `json:"type"`
	DoctorName  string     `json:"doctorName"`
	FileName    string     `json:"fileName"`
	ContentType string     `json:"contentType"`
	Data        string     `json:"data"` // base64 / data URL, opsional
}
