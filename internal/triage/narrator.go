package triage

import (
	"context"
	"log"

	"sarthi-backend/internal/models"
)

// LogNarrator hanya mencatat teks yang akan dibacakan.
// Text-to-speech sebenarnya dijalankan di perangkat pasien.
type LogNarrator struct{}

func (LogNarrator) Narrate(ctx context.Context, text string, lang models.Language) {
	voice := "en-IN"
	if lang == models.LanguageHindi {
		voice = "hi-IN"
	}
	log.Printf("[Narrator] %s: %q", voice, text)
}
