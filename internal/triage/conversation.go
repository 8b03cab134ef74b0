package triage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"sarthi-backend/internal/advisor"
	"sarthi-backend/internal/models"

	"github.com/google/uuid"
)

type State string

const (
	StateCollecting       State = "collecting"
	StateAwaitingResponse State = "awaiting_response"
	StateTerminal         State = "terminal"
)

var (
	ErrEmptySubmission    = errors.New("message text or image is required")
	ErrTurnInFlight       = errors.New("a reply is still pending for the previous message")
	ErrConversationClosed = errors.New("triage is complete; restart to ask again")
	ErrNoVerdict          = errors.New("triage has not produced a recommendation yet")
)

// Narrator membacakan balasan assistant (text-to-speech), fire-and-forget
type Narrator interface {
	Narrate(ctx context.Context, text string, lang models.Language)
}

// Submission adalah satu giliran dari pasien
type Submission struct {
	Text  string
	Image *models.Image
}

// Snapshot adalah tampilan percakapan untuk UI
type Snapshot struct {
	State    State                `json:"state"`
	Language models.Language      `json:"language"`
	Messages []models.Message     `json:"messages"`
	Result   *models.TriageResult `json:"result,omitempty"`
}

// Conversation adalah state machine triage:
// collecting -> awaiting_response -> collecting | terminal
type Conversation struct {
	advisor  advisor.Advisor
	narrator Narrator
	newID    func() string

	mu         sync.Mutex
	state      State
	language   models.Language
	messages   []models.Message
	result     *models.TriageResult
	generation uint64 // Naik setiap Reset, balasan generasi lama dibuang
}

func NewConversation(adv advisor.Advisor, patientName string) *Conversation {
	c := &Conversation{
		advisor: adv,
		newID:   uuid.NewString,
	}
	c.Reset(models.LanguageEnglish, patientName)
	return c
}

// SetNarrator mengaktifkan mode percakapan suara
func (c *Conversation) SetNarrator(n Narrator) {
	c.mu.Lock()
	c.narrator = n
	c.mu.Unlock()
}

// Reset memulai ulang percakapan dengan sapaan dalam bahasa yang dipilih
func (c *Conversation) Reset(lang models.Language, patientName string) {
	lang = lang.Normalize()
	name := firstName(patientName)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = StateCollecting
	c.language = lang
	c.result = nil
	c.messages = []models.Message{models.AssistantReply{ID: c.newID(), Text: greeting(name, lang), Options: []string{}}}
}

// Submit mengirim satu giliran pasien beserta seluruh riwayat dan ringkasan profil ke advisor
func (c *Conversation) Submit(ctx context.Context, profile models.UserProfile, sub Submission) (models.Message, error) {
	if strings.TrimSpace(sub.Text) == "" && sub.Image == nil {
		return nil, ErrEmptySubmission
	}

	c.mu.Lock()
	switch c.state {
	case StateAwaitingResponse:
		c.mu.Unlock()
		return nil, ErrTurnInFlight
	case StateTerminal:
		c.mu.Unlock()
		return nil, ErrConversationClosed
	}

	turn := models.UserTurn{ID: c.newID(), Text: sub.Text, Image: sub.Image}
	c.messages = append(c.messages, turn)
	c.state = StateAwaitingResponse
	gen := c.generation
	lang := c.language
	history := append([]models.Message{}, c.messages...)
	c.mu.Unlock()

	req := advisor.TriageRequest{History: history, Profile: profile, Language: lang}
	reply, err := c.advisor.RequestTriageTurn(ctx, req)
	if err != nil {
		log.Printf("[Triage] advisor failed, using fallback: %v", err)
		reply = advisor.TriageFallback(lang)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// Percakapan sudah di-reset selama menunggu
		return nil, fmt.Errorf("conversation was restarted: %w", context.Canceled)
	}

	var msg models.Message
	if reply.Terminal() {
		result := *reply.TriageResult
		msg = models.Verdict{ID: c.newID(), Text: reply.Text, Result: result}
		c.result = &result
		c.state = StateTerminal
	} else {
		options := reply.Options
		if options == nil {
			options = []string{}
		}
		msg = models.AssistantReply{ID: c.newID(), Text: reply.Text, Options: options}
		c.state = StateCollecting
	}
	c.messages = append(c.messages, msg)
	log.Printf("[Triage] %s -> %s", models.DescribeMessage(turn), models.DescribeMessage(msg))

	if c.narrator != nil {
		go c.narrator.Narrate(context.Background(), reply.Text, lang)
	}
	return msg, nil
}

// Language returns the language the current conversation runs in.
func (c *Conversation) Language() models.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

// Snapshot menyalin state saat ini
func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:    c.state,
		Language: c.language,
		Messages: append([]models.Message{}, c.messages...),
	}
	if c.result != nil {
		result := *c.result
		snap.Result = &result
	}
	return snap
}

// Recommendation mengembalikan spesialis yang direkomendasikan (aksi "find specialists")
func (c *Conversation) Recommendation() (models.TriageResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateTerminal || c.result == nil {
		return models.TriageResult{}, ErrNoVerdict
	}
	return *c.result, nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func greeting(name string, lang models.Language) string {
	if lang == models.LanguageHindi {
		return fmt.Sprintf("नमस्ते %s। मैं वैद्य AI हूँ। आज आप कैसा महसूस कर रहे हैं?", name)
	}
	return fmt.Sprintf("Namaste %s. I'm Vaidya AI. How are you feeling today?", name)
}
