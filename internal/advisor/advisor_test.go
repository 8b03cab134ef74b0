package advisor

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"sarthi-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	text     string
	err      error
	contents []*genai.Content
	cfg      *genai.GenerateContentConfig
}

func (f *fakeGenerator) generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	f.contents = contents
	f.cfg = cfg
	return f.text, f.err
}

func testProfile() models.UserProfile {
	return models.UserProfile{
		Name:           "Rahul Sharma",
		Age:            28,
		MedicalHistory: "Asthma (Mild)",
		Allergies:      []string{"Penicillin"},
		Medications:    []models.Medication{{ID: "m1", Name: "Cetirizine"}},
		MedicalEvents:  []models.MedicalEvent{{Date: "2023-05-22", Title: "Viral Fever", Description: "High fever", Type: models.EventDiagnosis}},
	}
}

func TestTriageTurnTerminalReply(t *testing.T) {
	gen := &fakeGenerator{text: `{"text":"Please see a cardiologist.","options":[],"isFinal":true,"triageResult":{"level":"Yellow","specialty":"Cardiologist","summary":"Chest tightness on exertion"}}`}
	g := &Gemini{gen: gen, model: DefaultModel}

	image := models.Image{MIMEType: "image/png", Data: []byte{1, 2, 3}}
	history := []models.Message{
		models.AssistantReply{ID: "1", Text: "Namaste Rahul."},
		models.UserTurn{ID: "2", Text: "My chest feels tight", Image: &image},
	}

	reply, err := g.RequestTriageTurn(context.Background(), TriageRequest{History: history, Profile: testProfile(), Language: models.LanguageEnglish})
	require.NoError(t, err)
	assert.True(t, reply.Terminal())
	assert.Equal(t, "Cardiologist", reply.TriageResult.Specialty)

	require.Len(t, gen.contents, 2)
	assert.Equal(t, roleModel, gen.contents[0].Role)
	assert.Equal(t, roleUser, gen.contents[1].Role)
	require.Len(t, gen.contents[1].Parts, 2)
	assert.Equal(t, "image/png", gen.contents[1].Parts[1].InlineData.MIMEType)

	require.NotNil(t, gen.cfg)
	assert.Equal(t, "application/json", gen.cfg.ResponseMIMEType)
	instruction := gen.cfg.SystemInstruction.Parts[0].Text
	assert.Contains(t, instruction, "- Age: 28")
	assert.Contains(t, instruction, "- Allergies: Penicillin")
	assert.Contains(t, instruction, "- Medications: Cetirizine")
	assert.Contains(t, instruction, "Summary: Asthma (Mild)")
	assert.Contains(t, instruction, "Respond in English.")
}

func TestTriageTurnHindiInstruction(t *testing.T) {
	gen := &fakeGenerator{text: `{"text":"ok","isFinal":false}`}
	g := &Gemini{gen: gen, model: DefaultModel}

	reply, err := g.RequestTriageTurn(context.Background(), TriageRequest{Profile: testProfile(), Language: models.LanguageHindi})
	require.NoError(t, err)
	assert.False(t, reply.Terminal())
	assert.NotNil(t, reply.Options)
	assert.Contains(t, gen.cfg.SystemInstruction.Parts[0].Text, "Hindi (Devanagari script)")
}

func TestTriageTurnFailuresAreTyped(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"transport": {err: errors.New("connection reset")},
		"empty":     {text: ""},
		"malformed": {text: "{not json"},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			g := &Gemini{gen: gen, model: DefaultModel}
			_, err := g.RequestTriageTurn(context.Background(), TriageRequest{Profile: testProfile()})

			var ae *Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, OpTriage, ae.Op)
		})
	}
}

func TestFinalWithoutResultIsNotTerminal(t *testing.T) {
	reply, err := parseTriageReply(`{"text":"Done","isFinal":true}`)
	require.NoError(t, err)
	assert.False(t, reply.Terminal())
}

func TestPrescriptionParse(t *testing.T) {
	gen := &fakeGenerator{text: `{"diagnosis":"Acute Bronchitis","medications":["Azithromycin 500mg"],"followUp":"5 Days"}`}
	g := &Gemini{gen: gen, model: DefaultModel}

	data, err := g.RequestPrescriptionParse(context.Background(), models.Image{MIMEType: "image/jpeg", Data: []byte{9}})
	require.NoError(t, err)
	assert.Equal(t, "Acute Bronchitis", data.Diagnosis)
	assert.Equal(t, []string{"Azithromycin 500mg"}, data.Medications)
	assert.Equal(t, "5 Days", data.FollowUp)
	assert.Equal(t, prescriptionInstruction, gen.cfg.SystemInstruction.Parts[0].Text)
}

func TestPrescriptionParsePropagatesFailure(t *testing.T) {
	g := &Gemini{gen: &fakeGenerator{err: errors.New("quota")}, model: DefaultModel}

	_, err := g.RequestPrescriptionParse(context.Background(), models.Image{})
	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, OpPrescription, ae.Op)
}

func TestSummaryAndTipPrompts(t *testing.T) {
	gen := &fakeGenerator{text: "  Stay active.  "}
	g := &Gemini{gen: gen, model: DefaultModel}

	tip, err := g.RequestTip(context.Background(), testProfile(), models.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Stay active.", tip)
	assert.Contains(t, gen.contents[0].Parts[0].Text, "Keep it under 30 words.")
	assert.Nil(t, gen.cfg)

	_, err = g.RequestSummary(context.Background(), testProfile(), models.LanguageHindi)
	require.NoError(t, err)
	assert.Contains(t, gen.contents[0].Parts[0].Text, "health summary in Hindi")
}

func TestDecodeDataURL(t *testing.T) {
	raw := []byte("fake-png")
	img, err := DecodeDataURL("data:image/png;base64," + base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, raw, img.Data)

	img, err = DecodeDataURL(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MIMEType)

	_, err = DecodeDataURL("data:image/png,plain")
	assert.ErrorIs(t, err, ErrInvalidImage)
	_, err = DecodeDataURL("")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestTriageFallback(t *testing.T) {
	assert.Equal(t, TriageFallbackEnglish, TriageFallback(models.LanguageEnglish).Text)
	assert.Equal(t, TriageFallbackHindi, TriageFallback(models.LanguageHindi).Text)
	assert.False(t, TriageFallback("").IsFinal)
}

func TestUnconfiguredFailsTyped(t *testing.T) {
	_, err := Unconfigured{}.RequestSummary(context.Background(), testProfile(), models.LanguageEnglish)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
