package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/internal/events"
	"github.com/support-desk/ticket-dashboard/internal/repository"
	"github.com/support-desk/ticket-dashboard/internal/state"
	"github.com/support-desk/ticket-dashboard/pkg/errorutil"
)

// TicketService coordinates ticket workflows. Every mutation records exactly
// one audit entry; audit or notification failures are logged and reported to
// the recorder's caller but never roll back the ticket write.
type TicketService struct {
	tickets     repository.TicketRepository
	audit       *AuditService
	dispatcher  events.Dispatcher
	invalidator state.Invalidator
	logger      *zap.Logger
}

// TicketDependencies bundles collaborators for ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	Audit       *AuditService
	Dispatcher  events.Dispatcher
	Invalidator state.Invalidator
	Logger      *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title          string
	Description    string
	Location       string
	Coordinates    *domain.Coordinates
	Technician     string
	Status         domain.TicketStatus
	Priority       domain.TicketPriority
	ProductType    domain.ProductType
	DueDate        string
	EstimatedHours *float64
	ActualHours    *float64
	Tags           []string
}

// TicketUpdateInput describes a full-field ticket update.
type TicketUpdateInput = TicketCreateInput

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:     deps.TicketRepo,
		audit:       deps.Audit,
		dispatcher:  deps.Dispatcher,
		invalidator: deps.Invalidator,
		logger:      deps.Logger,
	}
}

// Create persists a new ticket, records the create audit entry, and emits
// the assignment notification via the created event.
func (s *TicketService) Create(ctx context.Context, actorID string, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Title:          strings.TrimSpace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		Location:       strings.TrimSpace(input.Location),
		Coordinates:    input.Coordinates,
		Technician:     strings.TrimSpace(input.Technician),
		Status:         input.Status,
		Priority:       input.Priority,
		ProductType:    input.ProductType,
		DueDate:        input.DueDate,
		EstimatedHours: input.EstimatedHours,
		ActualHours:    input.ActualHours,
		Tags:           input.Tags,
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, errorutil.MapError(err)
	}
	s.recordAudit(s.audit.RecordCreate(ctx, ticket, actorID))
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketCreatedPayload{
			Title:      ticket.Title,
			Technician: ticket.Technician,
			Priority:   ticket.Priority,
			Product:    ticket.ProductType,
		},
	})
	s.invalidateTickets(ctx)
	return ticket, nil
}

// Update replaces the mutable fields of a ticket and records the update
// audit entry. A status change additionally emits a status notification.
func (s *TicketService) Update(ctx context.Context, actorID, ticketID string, input TicketUpdateInput) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	oldStatus := ticket.Status
	ticket.Title = strings.TrimSpace(input.Title)
	ticket.Description = strings.TrimSpace(input.Description)
	ticket.Location = strings.TrimSpace(input.Location)
	ticket.Coordinates = input.Coordinates
	ticket.Technician = strings.TrimSpace(input.Technician)
	ticket.Status = input.Status
	ticket.Priority = input.Priority
	ticket.ProductType = input.ProductType
	ticket.DueDate = input.DueDate
	ticket.EstimatedHours = input.EstimatedHours
	ticket.ActualHours = input.ActualHours
	ticket.Tags = input.Tags

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, errorutil.MapError(err)
	}
	s.recordAudit(s.audit.RecordUpdate(ctx, ticket, actorID))
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload:  events.TicketUpdatedPayload{Title: ticket.Title},
	})
	if oldStatus != ticket.Status {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			ActorID:  actorID,
			Payload: events.TicketStatusChangedPayload{
				Title:     ticket.Title,
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	}
	s.invalidateTickets(ctx)
	return ticket, nil
}

// UpdateStatus changes only the status of a ticket. Technicians may touch
// only tickets assigned to them; admins may touch any.
func (s *TicketService) UpdateStatus(ctx context.Context, actor *domain.User, ticketID string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && ticket.Technician != actor.Name {
		return nil, errorutil.NewForbidden("ticket not assigned to caller")
	}
	if ticket.Status == newStatus {
		return ticket, nil
	}
	oldStatus := ticket.Status
	ticket.Status = newStatus
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, errorutil.MapError(err)
	}
	s.recordAudit(s.audit.RecordUpdate(ctx, ticket, actor.ID))
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketStatusChangedPayload{
			Title:     ticket.Title,
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	s.invalidateTickets(ctx)
	return ticket, nil
}

// Delete removes a ticket and records the delete audit entry. No
// notification is emitted for deletions.
func (s *TicketService) Delete(ctx context.Context, actorID, ticketID string) error {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		return errorutil.MapError(err)
	}
	s.recordAudit(s.audit.RecordDelete(ctx, ticket.ID, ticket.Title, actorID))
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload:  events.TicketDeletedPayload{Title: ticket.Title},
	})
	s.invalidateTickets(ctx)
	return nil
}

// Assign hands the ticket to another technician, records the assign audit
// entry, and emits the reassignment notification via the assigned event.
func (s *TicketService) Assign(ctx context.Context, actorID, ticketID, technician string) (*domain.Ticket, error) {
	technician = strings.TrimSpace(technician)
	if technician == "" {
		return nil, errorutil.NewValidationError("technician required", nil)
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	ticket.Technician = technician
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, errorutil.MapError(err)
	}
	s.recordAudit(s.audit.RecordAssign(ctx, ticket, actorID))
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketAssignedPayload{
			Title:      ticket.Title,
			Technician: technician,
		},
	})
	s.invalidateTickets(ctx)
	return ticket, nil
}

// Get fetches a single ticket.
func (s *TicketService) Get(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.getTicket(ctx, ticketID)
}

// List returns tickets matching the filter.
func (s *TicketService) List(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, errorutil.MapError(err)
	}
	return tickets, nil
}

// ListForTechnician returns tickets assigned to the given technician name.
func (s *TicketService) ListForTechnician(ctx context.Context, technician string, limit, offset int) ([]domain.Ticket, error) {
	return s.List(ctx, repository.TicketFilter{
		Technician: &technician,
		Limit:      limit,
		Offset:     offset,
	})
}

func (s *TicketService) getTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, errorutil.MapError(err)
	}
	return ticket, nil
}

// recordAudit surfaces recorder failures without affecting the mutation.
func (s *TicketService) recordAudit(err error) {
	if err != nil {
		s.logger.Warn("audit record failed", zap.Error(err))
	}
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func (s *TicketService) invalidateTickets(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx, state.CollectionTickets); err != nil {
		s.logger.Warn("ticket invalidation failed", zap.Error(err))
	}
}
