package triage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"sarthi-backend/internal/advisor"
	"sarthi-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAdvisor struct {
	advisor.Unconfigured

	mu      sync.Mutex
	replies []advisor.TriageReply
	errs    []error
	calls   []advisor.TriageRequest
	block   chan struct{} // kalau tidak nil, request menunggu sampai channel ditutup
	entered chan struct{}
}

func (s *scriptedAdvisor) RequestTriageTurn(ctx context.Context, req advisor.TriageRequest) (advisor.TriageReply, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	i := len(s.calls) - 1
	block, entered := s.block, s.entered
	s.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}

	if i < len(s.errs) && s.errs[i] != nil {
		return advisor.TriageReply{}, s.errs[i]
	}
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return advisor.TriageReply{Text: "Tell me more.", Options: []string{"Yes", "No"}}, nil
}

func (s *scriptedAdvisor) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestConversation(adv advisor.Advisor) *Conversation {
	c := NewConversation(adv, "Rahul Sharma")
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("m%d", n)
	}
	return c
}

func profile() models.UserProfile {
	return models.UserProfile{Name: "Rahul Sharma", Age: 28, Allergies: []string{"Penicillin"}}
}

func verdictReply() advisor.TriageReply {
	return advisor.TriageReply{
		Text:         "This needs a dermatologist.",
		IsFinal:      true,
		TriageResult: &models.TriageResult{Level: models.LevelGreen, Specialty: "Dermatologist", Summary: "Itchy rash"},
	}
}

func TestStartsWithGreeting(t *testing.T) {
	c := newTestConversation(&scriptedAdvisor{})

	snap := c.Snapshot()
	assert.Equal(t, StateCollecting, snap.State)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, "Namaste Rahul. I'm Vaidya AI. How are you feeling today?", snap.Messages[0].Content())
	assert.Equal(t, models.MessageRoleAssistant, snap.Messages[0].Role())
}

func TestEmptySubmissionIsRejectedWithoutRequest(t *testing.T) {
	adv := &scriptedAdvisor{}
	c := newTestConversation(adv)

	_, err := c.Submit(context.Background(), profile(), Submission{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptySubmission)
	assert.Len(t, c.Snapshot().Messages, 1)
	assert.Equal(t, 0, adv.callCount())
}

func TestImageOnlySubmissionIsAccepted(t *testing.T) {
	adv := &scriptedAdvisor{}
	c := newTestConversation(adv)

	_, err := c.Submit(context.Background(), profile(), Submission{Image: &models.Image{MIMEType: "image/jpeg", Data: []byte{1}}})
	require.NoError(t, err)
	assert.Equal(t, 1, adv.callCount())
}

func TestNonTerminalReplyKeepsCollecting(t *testing.T) {
	adv := &scriptedAdvisor{}
	c := newTestConversation(adv)

	msg, err := c.Submit(context.Background(), profile(), Submission{Text: "I have a headache"})
	require.NoError(t, err)

	reply, ok := msg.(models.AssistantReply)
	require.True(t, ok)
	assert.Equal(t, []string{"Yes", "No"}, reply.Options)

	snap := c.Snapshot()
	assert.Equal(t, StateCollecting, snap.State)
	assert.Len(t, snap.Messages, 3)

	// Seluruh riwayat + profil ikut terkirim
	require.Len(t, adv.calls, 1)
	assert.Len(t, adv.calls[0].History, 2)
	assert.Equal(t, 28, adv.calls[0].Profile.Age)
}

func TestTerminalReplyClosesConversation(t *testing.T) {
	adv := &scriptedAdvisor{replies: []advisor.TriageReply{verdictReply()}}
	c := newTestConversation(adv)

	msg, err := c.Submit(context.Background(), profile(), Submission{Text: "Rash on my arm"})
	require.NoError(t, err)
	_, ok := msg.(models.Verdict)
	assert.True(t, ok)

	snap := c.Snapshot()
	assert.Equal(t, StateTerminal, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, "Dermatologist", snap.Result.Specialty)

	rec, err := c.Recommendation()
	require.NoError(t, err)
	assert.Equal(t, models.LevelGreen, rec.Level)

	_, err = c.Submit(context.Background(), profile(), Submission{Text: "one more thing"})
	assert.ErrorIs(t, err, ErrConversationClosed)
	assert.Equal(t, 1, adv.callCount())
}

func TestFinalWithoutResultStaysOpen(t *testing.T) {
	adv := &scriptedAdvisor{replies: []advisor.TriageReply{{Text: "Done", IsFinal: true}}}
	c := newTestConversation(adv)

	_, err := c.Submit(context.Background(), profile(), Submission{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, StateCollecting, c.Snapshot().State)

	_, err = c.Recommendation()
	assert.ErrorIs(t, err, ErrNoVerdict)
}

func TestFailureAppendsApologyAndAllowsRetry(t *testing.T) {
	adv := &scriptedAdvisor{errs: []error{errors.New("network down")}}
	c := newTestConversation(adv)

	msg, err := c.Submit(context.Background(), profile(), Submission{Text: "fever"})
	require.NoError(t, err)
	assert.Equal(t, advisor.TriageFallbackEnglish, msg.Content())
	assert.Equal(t, StateCollecting, c.Snapshot().State)

	_, err = c.Submit(context.Background(), profile(), Submission{Text: "fever again"})
	require.NoError(t, err)
	assert.Equal(t, 2, adv.callCount())
}

func TestSecondSubmissionWhileInFlightIsRejected(t *testing.T) {
	adv := &scriptedAdvisor{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	c := newTestConversation(adv)

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), profile(), Submission{Text: "cough"})
		done <- err
	}()

	select {
	case <-adv.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first request never reached the advisor")
	}
	assert.Equal(t, StateAwaitingResponse, c.Snapshot().State)

	_, err := c.Submit(context.Background(), profile(), Submission{Text: "cough"})
	assert.ErrorIs(t, err, ErrTurnInFlight)

	close(adv.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, adv.callCount())
	assert.Len(t, c.Snapshot().Messages, 3)
}

func TestResetDiscardsPendingReply(t *testing.T) {
	adv := &scriptedAdvisor{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	c := newTestConversation(adv)

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), profile(), Submission{Text: "cough"})
		done <- err
	}()
	<-adv.entered

	c.Reset(models.LanguageHindi, "Rahul Sharma")
	close(adv.block)

	assert.ErrorIs(t, <-done, context.Canceled)
	snap := c.Snapshot()
	assert.Equal(t, StateCollecting, snap.State)
	assert.Equal(t, models.LanguageHindi, snap.Language)
	require.Len(t, snap.Messages, 1)
	assert.Contains(t, snap.Messages[0].Content(), "वैद्य AI")
}

func TestResetReopensTerminalConversation(t *testing.T) {
	adv := &scriptedAdvisor{replies: []advisor.TriageReply{verdictReply()}}
	c := newTestConversation(adv)

	_, err := c.Submit(context.Background(), profile(), Submission{Text: "rash"})
	require.NoError(t, err)
	require.Equal(t, StateTerminal, c.Snapshot().State)

	c.Reset(models.LanguageEnglish, "Rahul Sharma")
	assert.Equal(t, StateCollecting, c.Snapshot().State)
	_, err = c.Recommendation()
	assert.ErrorIs(t, err, ErrNoVerdict)
}

type recordingNarrator struct {
	got chan string
}

func (r recordingNarrator) Narrate(ctx context.Context, text string, lang models.Language) {
	r.got <- text
}

func TestNarratorReceivesReply(t *testing.T) {
	c := newTestConversation(&scriptedAdvisor{})
	n := recordingNarrator{got: make(chan string, 1)}
	c.SetNarrator(n)

	_, err := c.Submit(context.Background(), profile(), Submission{Text: "hello"})
	require.NoError(t, err)

	select {
	case text := <-n.got:
		assert.Equal(t, "Tell me more.", text)
	case <-time.After(2 * time.Second):
		t.Fatal("narrator was not called")
	}
}
