package models

type NotificationType string

const (
	NotificationAlert    NotificationType = "alert"
	NotificationInfo     NotificationType = "info"
	NotificationReminder NotificationType = "reminder"
)

type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"` // Label, bukan timestamp: "Just now", "2 hours ago"
	Type    NotificationType `json:"type"`
	Read    bool             `json:"read"`
}
