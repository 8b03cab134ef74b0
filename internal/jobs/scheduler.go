package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const TipTitle = "Daily Health Tip"

// TipSource memberi tips harian untuk pasien yang sedang login.
// ok=false kalau belum ada pasien.
type TipSource interface {
	DailyTip(ctx context.Context) (tip string, ok bool)
}

type Notifier interface {
	PushReminder(ctx context.Context, title, message string)
}

type Scheduler struct {
	cron    *cron.Cron
	tips    TipSource
	notify  Notifier
	timeout time.Duration
}

func NewScheduler(tips TipSource, notify Notifier) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		tips:    tips,
		notify:  notify,
		timeout: 30 * time.Second,
	}
}

// Start mendaftarkan job tips harian lalu menjalankan cron di background
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		log.Println("[Jobs] Running daily health tip reminder...")
		s.RunTipReminder(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid tip schedule %q: %w", spec, err)
	}

	s.cron.Start()
	return nil
}

// Stop menunggu job yang sedang jalan selesai
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunTipReminder ambil tips lalu kirim sebagai notifikasi reminder
func (s *Scheduler) RunTipReminder(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tip, ok := s.tips.DailyTip(ctx)
	if !ok {
		log.Println("[Jobs] No patient session, tip skipped")
		return false
	}

	s.notify.PushReminder(ctx, TipTitle, tip)
	return true
}
