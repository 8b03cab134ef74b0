package models

import (
	"encoding/json"
	"fmt"
)

type TriageLevel string

const (
	LevelGreen  TriageLevel = "Green"  // Tidak mendesak
	LevelYellow TriageLevel = "Yellow" // Perlu janji temu segera
	LevelRed    TriageLevel = "Red"    // IGD
)

func (l TriageLevel) Valid() bool {
	return l == LevelGreen || l == LevelYellow || l == LevelRed
}

type TriageResult struct {
	Level     TriageLevel `json:"level"`
	Specialty string      `json:"specialty"`
	Summary   string      `json:"summary"`
}

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message adalah satu giliran percakapan triage.
// Implementasinya hanya UserTurn, AssistantReply dan Verdict.
type Message interface {
	MessageID() string
	Role() MessageRole
	Content() string
	isMessage()
}

// Image is an attachment decoded from a data URL.
type Image struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"-"`
	DataURL  string `json:"-"` // Disimpan apa adanya untuk dikirim balik ke UI
}

type UserTurn struct {
	ID    string
	Text  string
	Image *Image
}

type AssistantReply struct {
	ID      string
	Text    string
	Options []string // Quick reply
}

// Verdict adalah balasan terminal; setelah ini percakapan tertutup.
type Verdict struct {
	ID     string
	Text   string
	Result TriageResult
}

func (m UserTurn) MessageID() string       { return m.ID }
func (m UserTurn) Role() MessageRole       { return MessageRoleUser }
func (m UserTurn) Content() string         { return m.Text }
func (UserTurn) isMessage()                {}
func (m AssistantReply) MessageID() string { return m.ID }
func (m AssistantReply) Role() MessageRole { return MessageRoleAssistant }
func (m AssistantReply) Content() string   { return m.Text }
func (AssistantReply) isMessage()          {}
func (m Verdict) MessageID() string        { return m.ID }
func (m Verdict) Role() MessageRole        { return MessageRoleAssistant }
func (m Verdict) Content() string          { return m.Text }
func (Verdict) isMessage()                 {}

// messageWire is the shape the UI renders.
type messageWire struct {
	ID           string        `json:"id"`
	Role         MessageRole   `json:"role"`
	Text         string        `json:"text"`
	Image        string        `json:"image,omitempty"`
	Options      []string      `json:"options,omitempty"`
	IsFinal      bool          `json:"isFinal,omitempty"`
	TriageResult *TriageResult `json:"triageResult,omitempty"`
}

func (m UserTurn) MarshalJSON() ([]byte, error) {
	w := messageWire{ID: m.ID, Role: MessageRoleUser, Text: m.Text}
	if m.Image != nil {
		w.Image = m.Image.DataURL
	}
	return json.Marshal(w)
}

func (m AssistantReply) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageWire{ID: m.ID, Role: MessageRoleAssistant, Text: m.Text, Options: m.Options})
}

func (m Verdict) MarshalJSON() ([]byte, error) {
	result := m.Result
	return json.Marshal(messageWire{ID: m.ID, Role: MessageRoleAssistant, Text: m.Text, IsFinal: true, TriageResult: &result})
}

// DescribeMessage dipakai untuk log
func DescribeMessage(m Message) string {
	switch v := m.(type) {
	case UserTurn:
		return fmt.Sprintf("user(%s, image=%t)", v.ID, v.Image != nil)
	case AssistantReply:
		return fmt.Sprintf("assistant(%s, options=%d)", v.ID, len(v.Options))
	case Verdict:
		return fmt.Sprintf("verdict(%s, level=%s, specialty=%s)", v.ID, v.Result.Level, v.Result.Specialty)
	}
	return "unknown"
}

type TriageMessageInput struct {
	Text  string `json:"text"`
	Image string `json:"image"` // Data URL, opsional
}

type TriageResetInput struct {
	Language Language `json:"language"`
}
