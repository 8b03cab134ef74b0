package models

const GeneralPhysician = "General Physician"

// Doctor adalah entri katalog dokter
type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Rating         float64  `json:"rating"`
	Image          string   `json:"image"`
	NextAvailable  string   `json:"nextAvailable"`
	Price          string   `json:"price"`
	IsVideoEnabled bool     `json:"isVideoEnabled"`
	About          string   `json:"about,omitempty"`
	Experience     int      `json:"experience,omitempty"` // Years
	Qualifications []string `json:"qualifications,omitempty"`
	Verified       bool     `json:"verified,omitempty"`
}

// Struct inputan dari dokter saat update profil
type UpdateDoctorInput struct {
	Name           string   `json:"name" binding:"required"`
	Specialty      string   `json:"specialty" binding:"required"`
	NextAvailable  string   `json:"nextAvailable"`
	Price          string   `json:"price"`
	IsVideoEnabled bool     `json:"isVideoEnabled"`
	About          string   `json:"about"`
	Experience     int      `json:"experience" binding:"gte=0"`
	Qualifications []string `json:"qualifications"`
}
