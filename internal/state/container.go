// Package state holds the in-memory projections of the store's collections.
// The only write path is whole-collection replacement: every refresh from the
// store swaps the full slice, never patches it, so consumers always observe a
// consistent snapshot and never assume read-after-write ordering.
package state

import (
	"sync"

	"github.com/support-desk/ticket-dashboard/internal/domain"
)

// Collection names the live-subscribed document collections.
type Collection string

const (
	CollectionTickets       Collection = "tickets"
	CollectionUsers         Collection = "users"
	CollectionAuditLogs     Collection = "audit_logs"
	CollectionNotifications Collection = "notifications"
)

// Container is the single holder of collection snapshots. Subscribers are
// notified after each replacement.
type Container struct {
	mu            sync.RWMutex
	tickets       []domain.Ticket
	users         []domain.User
	auditLogs     []domain.AuditLog
	notifications []domain.Notification

	subMu       sync.RWMutex
	subscribers map[Collection][]func()
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		subscribers: make(map[Collection][]func()),
	}
}

// Subscribe registers a callback invoked after every snapshot replacement of
// the given collection. Callbacks run synchronously on the applying
// goroutine and must be quick.
func (c *Container) Subscribe(col Collection, fn func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subscribers[col] = append(c.subscribers[col], fn)
}

func (c *Container) notify(col Collection) {
	c.subMu.RLock()
	subs := append([]func(){}, c.subscribers[col]...)
	c.subMu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// ReplaceTickets applies a full ticket snapshot.
func (c *Container) ReplaceTickets(tickets []domain.Ticket) {
	c.mu.Lock()
	c.tickets = append([]domain.Ticket(nil), tickets...)
	c.mu.Unlock()
	c.notify(CollectionTickets)
}

// Tickets returns a copy of the current ticket snapshot.
func (c *Container) Tickets() []domain.Ticket {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Ticket(nil), c.tickets...)
}

// ReplaceUsers applies a full user snapshot.
func (c *Container) ReplaceUsers(users []domain.User) {
	c.mu.Lock()
	c.users = append([]domain.User(nil), users...)
	c.mu.Unlock()
	c.notify(CollectionUsers)
}

// Users returns a copy of the current user snapshot.
func (c *Container) Users() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.User(nil), c.users...)
}

// ReplaceAuditLogs applies a full audit-log snapshot.
func (c *Container) ReplaceAuditLogs(logs []domain.AuditLog) {
	c.mu.Lock()
	c.auditLogs = append([]domain.AuditLog(nil), logs...)
	c.mu.Unlock()
	c.notify(CollectionAuditLogs)
}

// AuditLogs returns a copy of the current audit-log snapshot.
func (c *Container) AuditLogs() []domain.AuditLog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.AuditLog(nil), c.auditLogs...)
}

// ReplaceNotifications applies a full notification snapshot.
func (c *Container) ReplaceNotifications(notifications []domain.Notification) {
	c.mu.Lock()
	c.notifications = append([]domain.Notification(nil), notifications...)
	c.mu.Unlock()
	c.notify(CollectionNotifications)
}

// Notifications returns a copy of the current notification snapshot.
func (c *Container) Notifications() []domain.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Notification(nil), c.notifications...)
}
