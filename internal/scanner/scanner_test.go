package scanner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/support-desk/ticket-dashboard/internal/domain"
)

type capturedNotification struct {
	Type     domain.NotificationType
	Message  string
	TicketID string
}

type fakeEmitter struct {
	mu      sync.Mutex
	emitted []capturedNotification
	failFor map[string]error
}

func newFakeEmitter() *fakeEmitter {
	return &fakeEmitter{failFor: make(map[string]error)}
}

func (f *fakeEmitter) Create(_ context.Context, typ domain.NotificationType, message, ticketID string) (*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[ticketID]; ok {
		return nil, err
	}
	f.emitted = append(f.emitted, capturedNotification{Type: typ, Message: message, TicketID: ticketID})
	return &domain.Notification{Type: typ, Message: message, TicketID: ticketID}, nil
}

func (f *fakeEmitter) all() []capturedNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]capturedNotification(nil), f.emitted...)
}

func newTestScanner(tickets []domain.Ticket, emitter Emitter, today string) *Scanner {
	s := New(Config{
		Source:  func() []domain.Ticket { return tickets },
		Emitter: emitter,
		Dedup:   NewMemoryDeduper(),
		Logger:  zap.NewNop(),
	})
	day, _ := time.Parse(domain.DueDateLayout, today)
	s.now = func() time.Time { return day }
	return s
}

func TestScanOnceFlagsDueTodayAndOverdue(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "t1", Title: "modem swap", Status: domain.TicketStatusOpen, DueDate: "2024-03-11"},
		{ID: "t2", Title: "line repair", Status: domain.TicketStatusInProgress, DueDate: "2024-03-09"},
		{ID: "t3", Title: "splice audit", Status: domain.TicketStatusOpen, DueDate: "2024-03-20"},
	}
	emitter := newFakeEmitter()
	s := newTestScanner(tickets, emitter, "2024-03-11")

	emitted := s.ScanOnce(context.Background())
	require.Equal(t, 2, emitted)

	got := emitter.all()
	require.Len(t, got, 2)
	assert.Equal(t, domain.NotificationDeadline, got[0].Type)
	assert.Equal(t, `Ticket "modem swap" is due today`, got[0].Message)
	assert.Equal(t, "t1", got[0].TicketID)
	assert.Equal(t, domain.NotificationUrgent, got[1].Type)
	assert.Equal(t, `Ticket "line repair" is overdue`, got[1].Message)
	assert.Equal(t, "t2", got[1].TicketID)
}

func TestScanOnceSkipsCompleted(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "t1", Title: "done job", Status: domain.TicketStatusCompleted, DueDate: "2024-03-01"},
		{ID: "t2", Title: "done today", Status: domain.TicketStatusCompleted, DueDate: "2024-03-11"},
	}
	emitter := newFakeEmitter()
	s := newTestScanner(tickets, emitter, "2024-03-11")

	assert.Equal(t, 0, s.ScanOnce(context.Background()))
	assert.Empty(t, emitter.all())
}

func TestScanOnceDeduplicatesAcrossPasses(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "t1", Title: "stuck ticket", Status: domain.TicketStatusOpen, DueDate: "2024-03-05"},
	}
	emitter := newFakeEmitter()
	s := newTestScanner(tickets, emitter, "2024-03-11")

	assert.Equal(t, 1, s.ScanOnce(context.Background()))
	assert.Equal(t, 0, s.ScanOnce(context.Background()), "second pass over the same snapshot emits nothing")
	require.Len(t, emitter.all(), 1)
}

func TestScanOnceRetriesAfterFailedEmit(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "t1", Title: "flaky store", Status: domain.TicketStatusOpen, DueDate: "2024-03-05"},
	}
	emitter := newFakeEmitter()
	emitter.failFor["t1"] = errors.New("store unavailable")
	s := newTestScanner(tickets, emitter, "2024-03-11")

	assert.Equal(t, 0, s.ScanOnce(context.Background()))
	assert.Empty(t, emitter.all())

	// A failed emit must not consume the day's dedup slot.
	delete(emitter.failFor, "t1")
	assert.Equal(t, 1, s.ScanOnce(context.Background()))
	require.Len(t, emitter.all(), 1)

	assert.Equal(t, 0, s.ScanOnce(context.Background()), "dedup holds once the emit succeeded")
	require.Len(t, emitter.all(), 1)
}

func TestScanOnceEmitsAgainOnNewDay(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "t1", Title: "stuck ticket", Status: domain.TicketStatusOpen, DueDate: "2024-03-05"},
	}
	emitter := newFakeEmitter()
	s := newTestScanner(tickets, emitter, "2024-03-11")

	assert.Equal(t, 1, s.ScanOnce(context.Background()))

	nextDay, _ := time.Parse(domain.DueDateLayout, "2024-03-12")
	s.now = func() time.Time { return nextDay }
	assert.Equal(t, 1, s.ScanOnce(context.Background()), "the dedup key includes the day")
	require.Len(t, emitter.all(), 2)
}

func TestScanOnceIsolatesPerTicketFailures(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "t1", Title: "first", Status: domain.TicketStatusOpen, DueDate: "2024-03-09"},
		{ID: "t2", Title: "second", Status: domain.TicketStatusOpen, DueDate: "2024-03-09"},
		{ID: "t3", Title: "third", Status: domain.TicketStatusOpen, DueDate: "2024-03-09"},
	}
	emitter := newFakeEmitter()
	emitter.failFor["t2"] = errors.New("store unavailable")
	s := newTestScanner(tickets, emitter, "2024-03-11")

	assert.Equal(t, 2, s.ScanOnce(context.Background()))

	got := emitter.all()
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].TicketID)
	assert.Equal(t, "t3", got[1].TicketID)
}

func TestNotifyChangedCoalesces(t *testing.T) {
	s := New(Config{
		Source:  func() []domain.Ticket { return nil },
		Emitter: newFakeEmitter(),
		Dedup:   NewMemoryDeduper(),
		Logger:  zap.NewNop(),
	})

	// Repeated notifications while no pass is running must not block.
	for i := 0; i < 10; i++ {
		s.NotifyChanged()
	}
	assert.Len(t, s.changed, 1)
}
