package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/internal/events"
	"github.com/support-desk/ticket-dashboard/internal/repository"
	"github.com/support-desk/ticket-dashboard/internal/state"
)

// NotificationService creates and serves dashboard notifications. It also
// subscribes to ticket events so assignment and status notifications are
// emitted alongside the mutations that cause them.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	invalidator   state.Invalidator
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, invalidator state.Invalidator, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		invalidator:   invalidator,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to ticket events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handleTicketAssigned)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
}

// Create persists a notification, unread by default.
func (n *NotificationService) Create(ctx context.Context, typ domain.NotificationType, message, ticketID string) (*domain.Notification, error) {
	notification := &domain.Notification{
		Type:     typ,
		Message:  message,
		TicketID: ticketID,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}
	n.invalidate(ctx)
	return notification, nil
}

// List returns recent notifications, newest first.
func (n *NotificationService) List(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	return n.notifications.List(ctx, limit, offset)
}

// MarkRead flips the read flag; notifications are never deleted.
func (n *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := n.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	n.invalidate(ctx)
	return nil
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	message := fmt.Sprintf("New ticket assigned to %s", payload.Technician)
	if _, err := n.Create(ctx, domain.NotificationAssignment, message, event.TicketID); err != nil {
		n.logger.Warn("assignment notification failed", zap.String("ticket_id", event.TicketID), zap.Error(err))
		return err
	}
	return nil
}

func (n *NotificationService) handleTicketAssigned(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketAssignedPayload)
	if !ok {
		return nil
	}
	message := fmt.Sprintf("Ticket reassigned to %s", payload.Technician)
	if _, err := n.Create(ctx, domain.NotificationAssignment, message, event.TicketID); err != nil {
		n.logger.Warn("assignment notification failed", zap.String("ticket_id", event.TicketID), zap.Error(err))
		return err
	}
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return nil
	}
	message := fmt.Sprintf("Ticket %q status changed to %s", payload.Title, payload.NewStatus)
	if _, err := n.Create(ctx, domain.NotificationStatus, message, event.TicketID); err != nil {
		n.logger.Warn("status notification failed", zap.String("ticket_id", event.TicketID), zap.Error(err))
		return err
	}
	return nil
}

func (n *NotificationService) invalidate(ctx context.Context) {
	if n.invalidator == nil {
		return
	}
	if err := n.invalidator.Invalidate(ctx, state.CollectionNotifications); err != nil {
		n.logger.Warn("notification invalidation failed", zap.Error(err))
	}
}
