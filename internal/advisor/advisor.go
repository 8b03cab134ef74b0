package advisor

import (
	"context"
	"errors"
	"fmt"

	"sarthi-backend/internal/models"
)

// Advisor adalah satu-satunya dependency eksternal: layanan AI generatif.
// Semua kegagalan dikembalikan sebagai *Error; kebijakan fallback ada di pemanggil.
type Advisor interface {
	RequestTriageTurn(ctx context.Context, req TriageRequest) (TriageReply, error)
	RequestPrescriptionParse(ctx context.Context, image models.Image) (models.PrescriptionData, error)
	RequestSummary(ctx context.Context, profile models.UserProfile, lang models.Language) (string, error)
	RequestTip(ctx context.Context, profile models.UserProfile, lang models.Language) (string, error)
}

type TriageRequest struct {
	History  []models.Message
	Profile  models.UserProfile
	Language models.Language
}

// TriageReply adalah output terstruktur {text, options[], isFinal, triageResult?}
type TriageReply struct {
	Text         string               `json:"text"`
	Options      []string             `json:"options"`
	IsFinal      bool                 `json:"isFinal"`
	TriageResult *models.TriageResult `json:"triageResult"`
}

// Terminal is true only when the reply is final and carries a usable verdict.
func (r TriageReply) Terminal() bool {
	return r.IsFinal && r.TriageResult != nil && r.TriageResult.Level.Valid()
}

type Op string

const (
	OpTriage       Op = "triage"
	OpPrescription Op = "prescription"
	OpSummary      Op = "summary"
	OpTip          Op = "tip"
)

var (
	ErrEmptyResponse = errors.New("no response from AI")
	ErrNotConfigured = errors.New("generative AI is not configured")
)

// Error membungkus kegagalan transport/parse dari AI
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("advisor %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// Teks fallback saat AI gagal
const (
	TriageFallbackEnglish = "I'm having trouble connecting to the network. Please check your connection or try again."
	TriageFallbackHindi   = "मुझे नेटवर्क से कनेक्ट करने में समस्या हो रही है। कृपया अपना कनेक्शन जांचें।"

	SummaryUnavailable = "Health summary unavailable."
	SummaryFailed      = "Could not generate summary at this time."

	TipEmpty  = "Drink plenty of water today!"
	TipFailed = "Take a 10-minute walk today to boost your energy."
)

// TriageFallback returns the apology shown in place of a failed reply.
func TriageFallback(lang models.Language) TriageReply {
	text := TriageFallbackEnglish
	if lang.Normalize() == models.LanguageHindi {
		text = TriageFallbackHindi
	}
	return TriageReply{Text: text, Options: []string{}, IsFinal: false}
}

// Unconfigured dipakai kalau GEMINI_API_KEY kosong: semua panggilan gagal
type Unconfigured struct{}

func (Unconfigured) RequestTriageTurn(context.Context, TriageRequest) (TriageReply, error) {
	return TriageReply{}, wrap(OpTriage, ErrNotConfigured)
}

func (Unconfigured) RequestPrescriptionParse(context.Context, models.Image) (models.PrescriptionData, error) {
	return models.PrescriptionData{}, wrap(OpPrescription, ErrNotConfigured)
}

func (Unconfigured) RequestSummary(context.Context, models.UserProfile, models.Language) (string, error) {
	return "", wrap(OpSummary, ErrNotConfigured)
}

func (Unconfigured) RequestTip(context.Context, models.UserProfile, models.Language) (string, error) {
	return "", wrap(OpTip, ErrNotConfigured)
}
