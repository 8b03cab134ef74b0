package models

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusUpcoming  AppointmentStatus = "upcoming"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Terminal reports whether no operation may move the record out of s.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type ConsultationType string

const (
	ConsultVideo    ConsultationType = "video"
	ConsultInPerson ConsultationType = "in-person"
)

func (t ConsultationType) Valid() bool {
	return t == ConsultVideo || t == ConsultInPerson
}

type Appointment struct {
	ID           string            `json:"id"`
	DoctorID     string            `json:"doctorId"`
	DoctorName   string            `json:"doctorName"` // Disalin saat booking, tidak ikut update katalog
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Notes        string            `json:"notes"`
	Type         ConsultationType  `json:"type"`
	Status       AppointmentStatus `json:"status"`
	Diagnosis    string            `json:"diagnosis,omitempty"`
	Prescription []string          `json:"prescription,omitempty"`
	UserRating   int               `json:"userRating,omitempty"` // 1-5
	UserReview   string            `json:"userReview,omitempty"`
}

type BookAppointmentInput struct {
	DoctorID string           `json:"doctorId" binding:"required"`
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Type     ConsultationType `json:"type" binding:"required,oneof=video in-person"`
}

type RateAppointmentInput struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}
