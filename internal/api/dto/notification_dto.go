package dto

import (
	"time"

	"github.com/support-desk/ticket-dashboard/internal/domain"
)

// NotificationResponse is the wire shape of a notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	TicketID  string    `json:"ticket_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// FromNotification maps the domain record to its wire shape.
func FromNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		TicketID:  n.TicketID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// AuditLogResponse is the wire shape of an audit entry.
type AuditLogResponse struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// FromAuditLog maps the domain record to its wire shape.
func FromAuditLog(entry *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        entry.ID,
		TicketID:  entry.TicketID,
		Action:    string(entry.Action),
		UserID:    entry.UserID,
		Timestamp: entry.Timestamp,
		Details:   entry.Details,
	}
}
