package domain

import "time"

// NotificationType classifies dashboard notifications.
type NotificationType string

const (
	NotificationDeadline   NotificationType = "deadline"
	NotificationUrgent     NotificationType = "urgent"
	NotificationAssignment NotificationType = "assignment"
	NotificationStatus     NotificationType = "status"
)

// Notification is a message surfaced in the dashboard notification center.
// The only mutation after creation is flipping IsRead.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	TicketID  string
	IsRead    bool
	CreatedAt time.Time
}
