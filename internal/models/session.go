package models

import (
	"encoding/json"
	"fmt"
)

// Session adalah satu identitas yang sedang login (pasien ATAU dokter)
type Session struct {
	Role      Role
	Token     string
	IsNewUser bool
	Patient   *UserProfile // Terisi jika Role == patient
	Doctor    *Doctor      // Terisi jika Role == doctor
}

type sessionWire struct {
	User      json.RawMessage `json:"user"`
	Role      Role            `json:"role"`
	Token     string          `json:"token,omitempty"`
	IsNewUser bool            `json:"isNewUser"`
}

// UserID mengambil ID dari identitas yang aktif
func (s Session) UserID() string {
	switch s.Role {
	case RolePatient:
		if s.Patient != nil {
			return s.Patient.ID
		}
	case RoleDoctor:
		if s.Doctor != nil {
			return s.Doctor.ID
		}
	}
	return ""
}

// Public adalah salinan tanpa token, untuk endpoint yang tidak butuh login
func (s Session) Public() Session {
	s.Token = ""
	return s
}

func (s Session) MarshalJSON() ([]byte, error) {
	var user interface{}
	switch s.Role {
	case RolePatient:
		user = s.Patient
	case RoleDoctor:
		user = s.Doctor
	default:
		return nil, fmt.Errorf("session: unknown role %q", s.Role)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sessionWire{User: raw, Role: s.Role, Token: s.Token, IsNewUser: s.IsNewUser})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var w sessionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out := Session{Role: w.Role, Token: w.Token, IsNewUser: w.IsNewUser}
	switch w.Role {
	case RolePatient:
		var p UserProfile
		if err := json.Unmarshal(w.User, &p); err != nil {
			return fmt.Errorf("session: decode patient: %w", err)
		}
		out.Patient = &p
	case RoleDoctor:
		var d Doctor
		if err := json.Unmarshal(w.User, &d); err != nil {
			return fmt.Errorf("session: decode doctor: %w", err)
		}
		out.Doctor = &d
	default:
		return fmt.Errorf("session: unknown role %q", w.Role)
	}
	*s = out
	return nil
}

// Struct untuk menangkap Input Login
type LoginInput struct {
	Email string `json:"email" binding:"required,email"`
	Role  Role   `json:"role" binding:"required,oneof=patient doctor"`
}

// Struct untuk menangkap Input Signup
type SignupInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  Role   `json:"role" binding:"required,oneof=patient doctor"`
}
