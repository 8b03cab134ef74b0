package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTips struct {
	tip string
	ok  bool
}

func (f fakeTips) DailyTip(context.Context) (string, bool) { return f.tip, f.ok }

type fakeNotifier struct {
	titles   []string
	messages []string
}

func (f *fakeNotifier) PushReminder(_ context.Context, title, message string) {
	f.titles = append(f.titles, title)
	f.messages = append(f.messages, message)
}

func TestRunTipReminderPushes(t *testing.T) {
	n := &fakeNotifier{}
	s := NewScheduler(fakeTips{tip: "Take a 10-minute walk today to boost your energy.", ok: true}, n)

	assert.True(t, s.RunTipReminder(context.Background()))
	require.Len(t, n.messages, 1)
	assert.Equal(t, TipTitle, n.titles[0])
	assert.Equal(t, "Take a 10-minute walk today to boost your energy.", n.messages[0])
}

func TestRunTipReminderSkipsWithoutPatient(t *testing.T) {
	n := &fakeNotifier{}
	s := NewScheduler(fakeTips{}, n)

	assert.False(t, s.RunTipReminder(context.Background()))
	assert.Empty(t, n.messages)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(fakeTips{}, &fakeNotifier{})

	assert.Error(t, s.Start("not a schedule"))
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler(fakeTips{}, &fakeNotifier{})

	require.NoError(t, s.Start("0 8 * * *"))
	s.Stop()
}
