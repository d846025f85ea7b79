package domain

import "time"

// AuditAction captures which mutating operation an entry records.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionAssign AuditAction = "assign"
)

// AuditLog is an immutable record of a mutating action taken on a ticket.
// Entries are append-only: nothing in the service updates or deletes them.
type AuditLog struct {
	ID        string
	TicketID  string
	Action    AuditAction
	UserID    string
	Timestamp time.Time
	Details   string
}
