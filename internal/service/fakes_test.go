package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/internal/repository"
	"github.com/support-desk/ticket-dashboard/internal/state"
)

// In-memory repository doubles. They deliberately implement the same
// interfaces the postgres-backed ones do so services stay unaware.

type fakeTicketRepo struct {
	tickets map[string]*domain.Ticket
	nextID  int

	createErr error
	updateErr error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*domain.Ticket)}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	ticket.ID = fmt.Sprintf("ticket-%d", r.nextID)
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tickets, id)
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *ticket
	return &clone, nil
}

func (r *fakeTicketRepo) List(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, ticket := range r.tickets {
		if filter.Technician != nil && ticket.Technician != *filter.Technician {
			continue
		}
		out = append(out, *ticket)
	}
	return out, nil
}

func (r *fakeTicketRepo) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return r.List(ctx, repository.TicketFilter{})
}

type fakeAuditRepo struct {
	entries   []domain.AuditLog
	appendErr error
}

func (r *fakeAuditRepo) Append(_ context.Context, entry *domain.AuditLog) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	entry.ID = fmt.Sprintf("audit-%d", len(r.entries)+1)
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, limit, offset int) ([]domain.AuditLog, error) {
	if offset >= len(r.entries) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(r.entries) {
		end = len(r.entries)
	}
	return append([]domain.AuditLog(nil), r.entries[offset:end]...), nil
}

func (r *fakeAuditRepo) ListAll(_ context.Context) ([]domain.AuditLog, error) {
	return append([]domain.AuditLog(nil), r.entries...), nil
}

func (r *fakeAuditRepo) byAction(action domain.AuditAction) []domain.AuditLog {
	var out []domain.AuditLog
	for _, entry := range r.entries {
		if entry.Action == action {
			out = append(out, entry)
		}
	}
	return out
}

type fakeNotificationRepo struct {
	notifications []domain.Notification
	createErr     error
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	n.ID = fmt.Sprintf("notification-%d", len(r.notifications)+1)
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeNotificationRepo) List(_ context.Context, limit, offset int) ([]domain.Notification, error) {
	if offset >= len(r.notifications) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(r.notifications) {
		end = len(r.notifications)
	}
	return append([]domain.Notification(nil), r.notifications[offset:end]...), nil
}

func (r *fakeNotificationRepo) ListAll(_ context.Context) ([]domain.Notification, error) {
	return append([]domain.Notification(nil), r.notifications...), nil
}

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role domain.UserRole) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

// fakeInvalidator records invalidation signals instead of publishing them.
type fakeInvalidator struct {
	collections []state.Collection
}

func (f *fakeInvalidator) Invalidate(_ context.Context, col state.Collection) error {
	f.collections = append(f.collections, col)
	return nil
}

func (f *fakeInvalidator) count(col state.Collection) int {
	n := 0
	for _, c := range f.collections {
		if c == col {
			n++
		}
	}
	return n
}
