// Package scanner inspects the ticket snapshot for deadlines and emits the
// corresponding notifications: deadline for tickets due today, urgent for
// overdue ones. Completed tickets are never flagged.
package scanner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/support-desk/ticket-dashboard/internal/domain"
)

// Emitter persists a notification produced by a scan.
type Emitter interface {
	Create(ctx context.Context, typ domain.NotificationType, message, ticketID string) (*domain.Notification, error)
}

// Config bundles scanner collaborators.
type Config struct {
	// Source returns the current ticket snapshot.
	Source   func() []domain.Ticket
	Emitter  Emitter
	Dedup    Deduper
	Interval time.Duration
	Location *time.Location
	Logger   *zap.Logger
}

// Scanner runs one pass immediately at start, then on every interval tick
// and whenever the ticket snapshot is replaced.
type Scanner struct {
	source   func() []domain.Ticket
	emitter  Emitter
	dedup    Deduper
	interval time.Duration
	loc      *time.Location
	logger   *zap.Logger
	now      func() time.Time
	changed  chan struct{}
}

// New creates a scanner.
func New(cfg Config) *Scanner {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Hour
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Scanner{
		source:   cfg.Source,
		emitter:  cfg.Emitter,
		dedup:    cfg.Dedup,
		interval: interval,
		loc:      loc,
		logger:   cfg.Logger,
		now:      time.Now,
		changed:  make(chan struct{}, 1),
	}
}

// NotifyChanged requests an extra pass after a snapshot replacement. Safe to
// call from any goroutine; coalesces while a pass is pending.
func (s *Scanner) NotifyChanged() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is cancelled.
func (s *Scanner) Run(ctx context.Context) {
	s.ScanOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ScanOnce(ctx)
		case <-s.changed:
			s.ScanOnce(ctx)
		}
	}
}

// ScanOnce walks the snapshot and emits due-today and overdue notifications.
// Failures are isolated per ticket: one failed emit never stops the pass.
// Returns the number of notifications emitted.
func (s *Scanner) ScanOnce(ctx context.Context) int {
	today := s.now().In(s.loc).Format(domain.DueDateLayout)
	emitted := 0

	for _, ticket := range s.source() {
		if ticket.Status == domain.TicketStatusCompleted {
			continue
		}

		var (
			typ     domain.NotificationType
			message string
		)
		switch {
		case ticket.IsDueToday(today):
			typ = domain.NotificationDeadline
			message = fmt.Sprintf("Ticket %q is due today", ticket.Title)
		case ticket.DueDate < today:
			typ = domain.NotificationUrgent
			message = fmt.Sprintf("Ticket %q is overdue", ticket.Title)
		default:
			continue
		}

		key := dedupKey(ticket.ID, typ, today)
		seen, err := s.dedup.Seen(ctx, key)
		if err != nil {
			s.logger.Warn("dedup check failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
			// fall through and emit; a duplicate beats a dropped deadline
		} else if seen {
			continue
		}

		if _, err := s.emitter.Create(ctx, typ, message, ticket.ID); err != nil {
			s.logger.Warn("deadline notification failed",
				zap.String("ticket_id", ticket.ID),
				zap.String("type", string(typ)),
				zap.Error(err))
			continue
		}
		emitted++

		// marked only after the emit succeeds, so a transient failure is
		// retried on the next pass instead of being swallowed for the day
		if err := s.dedup.Mark(ctx, key); err != nil {
			s.logger.Warn("dedup mark failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
		}
	}
	return emitted
}

func dedupKey(ticketID string, typ domain.NotificationType, day string) string {
	return fmt.Sprintf("scan:%s:%s:%s", ticketID, typ, day)
}
