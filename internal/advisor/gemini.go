package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"sarthi-backend/internal/models"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

const (
	roleUser  = "user"
	roleModel = "model"
)

// generator adalah potongan kecil dari genai.Models yang kita pakai
type generator interface {
	generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)
}

type genaiGenerator struct {
	client *genai.Client
}

func (g genaiGenerator) generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Gemini mengimplementasikan Advisor di atas Gemini API
type Gemini struct {
	gen   generator
	model string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	log.Printf("Gemini advisor ready (model %s)", model)
	return &Gemini{gen: genaiGenerator{client: client}, model: model}, nil
}

func (g *Gemini) RequestTriageTurn(ctx context.Context, req TriageRequest) (TriageReply, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: triageInstruction(req.Profile, req.Language)}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    triageSchema,
	}

	text, err := g.gen.generate(ctx, g.model, historyContents(req.History), cfg)
	if err != nil {
		return TriageReply{}, wrap(OpTriage, err)
	}

	reply, err := parseTriageReply(text)
	if err != nil {
		return TriageReply{}, wrap(OpTriage, err)
	}
	return reply, nil
}

func (g *Gemini) RequestPrescriptionParse(ctx context.Context, image models.Image) (models.PrescriptionData, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: prescriptionInstruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    prescriptionSchema,
	}
	contents := []*genai.Content{{
		Role: roleUser,
		Parts: []*genai.Part{
			{Text: prescriptionRequest},
			{InlineData: &genai.Blob{MIMEType: image.MIMEType, Data: image.Data}},
		},
	}}

	text, err := g.gen.generate(ctx, g.model, contents, cfg)
	if err != nil {
		return models.PrescriptionData{}, wrap(OpPrescription, err)
	}

	data, err := parsePrescription(text)
	if err != nil {
		return models.PrescriptionData{}, wrap(OpPrescription, err)
	}
	return data, nil
}

func (g *Gemini) RequestSummary(ctx context.Context, profile models.UserProfile, lang models.Language) (string, error) {
	text, err := g.gen.generate(ctx, g.model, promptContents(summaryPrompt(profile, lang)), nil)
	if err != nil {
		return "", wrap(OpSummary, err)
	}
	return strings.TrimSpace(text), nil
}

func (g *Gemini) RequestTip(ctx context.Context, profile models.UserProfile, lang models.Language) (string, error) {
	text, err := g.gen.generate(ctx, g.model, promptContents(tipPrompt(profile, lang)), nil)
	if err != nil {
		return "", wrap(OpTip, err)
	}
	return strings.TrimSpace(text), nil
}

func promptContents(prompt string) []*genai.Content {
	return []*genai.Content{{Role: roleUser, Parts: []*genai.Part{{Text: prompt}}}}
}

// historyContents memetakan riwayat percakapan ke format Gemini (assistant -> model)
func historyContents(history []models.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := roleUser
		if msg.Role() == models.MessageRoleAssistant {
			role = roleModel
		}

		var parts []*genai.Part
		if msg.Content() != "" {
			parts = append(parts, &genai.Part{Text: msg.Content()})
		}
		if turn, ok := msg.(models.UserTurn); ok && turn.Image != nil && len(turn.Image.Data) > 0 {
			parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: turn.Image.MIMEType, Data: turn.Image.Data}})
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}
	return contents
}

func parseTriageReply(text string) (TriageReply, error) {
	if strings.TrimSpace(text) == "" {
		return TriageReply{}, ErrEmptyResponse
	}

	var reply TriageReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return TriageReply{}, fmt.Errorf("decode triage reply: %w", err)
	}
	if reply.Options == nil {
		reply.Options = []string{}
	}
	return reply, nil
}

func parsePrescription(text string) (models.PrescriptionData, error) {
	if strings.TrimSpace(text) == "" {
		return models.PrescriptionData{}, ErrEmptyResponse
	}

	var data models.PrescriptionData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return models.PrescriptionData{}, fmt.Errorf("decode prescription: %w", err)
	}
	if data.Medications == nil {
		data.Medications = []string{}
	}
	return data, nil
}
