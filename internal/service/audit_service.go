package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/internal/repository"
	"github.com/support-desk/ticket-dashboard/internal/state"
)

// AuditService appends the audit trail entry for every ticket mutation.
// One entry per mutating operation; entries are never updated or deleted.
// A failed append is returned to the caller but never rolls back the ticket
// mutation it records — the two writes are not transactional.
type AuditService struct {
	logs        repository.AuditLogRepository
	invalidator state.Invalidator
	logger      *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(logs repository.AuditLogRepository, invalidator state.Invalidator, logger *zap.Logger) *AuditService {
	return &AuditService{logs: logs, invalidator: invalidator, logger: logger}
}

// RecordCreate appends the entry for a ticket creation.
func (s *AuditService) RecordCreate(ctx context.Context, ticket *domain.Ticket, actorID string) error {
	return s.record(ctx, ticket.ID, domain.AuditActionCreate, actorID, fmt.Sprintf("Ticket %q created", ticket.Title))
}

// RecordUpdate appends the entry for a ticket update.
func (s *AuditService) RecordUpdate(ctx context.Context, ticket *domain.Ticket, actorID string) error {
	return s.record(ctx, ticket.ID, domain.AuditActionUpdate, actorID, fmt.Sprintf("Ticket %q updated", ticket.Title))
}

// RecordDelete appends the entry for a ticket deletion.
func (s *AuditService) RecordDelete(ctx context.Context, ticketID, title, actorID string) error {
	return s.record(ctx, ticketID, domain.AuditActionDelete, actorID, fmt.Sprintf("Ticket %q deleted", title))
}

// RecordAssign appends the entry for a ticket reassignment.
func (s *AuditService) RecordAssign(ctx context.Context, ticket *domain.Ticket, actorID string) error {
	return s.record(ctx, ticket.ID, domain.AuditActionAssign, actorID, fmt.Sprintf("Ticket %q reassigned", ticket.Title))
}

// List returns recent audit entries, newest first.
func (s *AuditService) List(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	return s.logs.List(ctx, limit, offset)
}

func (s *AuditService) record(ctx context.Context, ticketID string, action domain.AuditAction, actorID, details string) error {
	entry := &domain.AuditLog{
		TicketID: ticketID,
		Action:   action,
		UserID:   actorID,
		Details:  details,
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AuditService) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx, state.CollectionAuditLogs); err != nil {
		s.logger.Warn("audit log invalidation failed", zap.Error(err))
	}
}
