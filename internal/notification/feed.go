package notification

import (
	"context"
	"log"
	"sync"

	"sarthi-backend/internal/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const JustNow = "Just now"

// Pusher mengirim salinan notifikasi ke perangkat (FCM)
type Pusher interface {
	Push(ctx context.Context, n models.Notification) error
}

// Feed adalah daftar notifikasi, terbaru di depan.
// Tidak ada kedaluwarsa dan tidak ada penandaan "read" dari sisi server.
type Feed struct {
	mu     sync.RWMutex
	items  []models.Notification
	pusher Pusher
	newID  func() string
}

func NewFeed(seed []models.Notification) *Feed {
	items := make([]models.Notification, len(seed))
	copy(items, seed)
	return &Feed{items: items, newID: uuid.NewString}
}

func (f *Feed) SetPusher(p Pusher) {
	f.mu.Lock()
	f.pusher = p
	f.mu.Unlock()
}

// Push menaruh notifikasi baru di urutan pertama.
// Gagal kirim ke perangkat hanya dicatat di log.
func (f *Feed) Push(ctx context.Context, title, message string, kind models.NotificationType) models.Notification {
	n := models.Notification{
		ID:      f.newID(),
		Title:   title,
		Message: message,
		Time:    JustNow,
		Type:    kind,
		Read:    false,
	}

	f.mu.Lock()
	f.items = append([]models.Notification{n}, f.items...)
	pusher := f.pusher
	f.mu.Unlock()

	if pusher != nil {
		if err := pusher.Push(ctx, n); err != nil {
			log.Printf("[Notification] Gagal push %q: %v", n.Title, err)
		}
	}
	return n
}

func (f *Feed) All() []models.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return append([]models.Notification{}, f.items...)
}

func (f *Feed) Unread() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return lo.CountBy(f.items, func(n models.Notification) bool { return !n.Read })
}

func DemoNotifications() []models.Notification {
	return []models.Notification{
		{ID: "1", Title: "Appointment Reminder", Message: "Video consult with Dr. Anita Desai starts in 15 mins.", Time: "10 min ago", Type: models.NotificationReminder, Read: false},
		{ID: "2", Title: "Lab Results Ready", Message: "Your recent blood work report is available for download.", Time: "2 hours ago", Type: models.NotificationInfo, Read: false},
		{ID: "3", Title: "Daily Check-in", Message: "Time for your daily wellness check.", Time: "Yesterday", Type: models.NotificationAlert, Read: true},
	}
}
