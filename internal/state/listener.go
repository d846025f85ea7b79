package state

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/support-desk/ticket-dashboard/internal/domain"
)

// invalidateChannel carries collection names whenever any client mutates a
// collection. Every subscriber reacts by reloading the full collection, so
// updates are always whole-snapshot replacements.
const invalidateChannel = "ticket-dashboard:invalidate"

// Invalidator signals that a collection changed and its snapshot is stale.
type Invalidator interface {
	Invalidate(ctx context.Context, col Collection) error
}

// RedisInvalidator publishes invalidation messages over redis pub/sub.
type RedisInvalidator struct {
	client *redis.Client
}

// NewRedisInvalidator creates the publisher.
func NewRedisInvalidator(client *redis.Client) *RedisInvalidator {
	return &RedisInvalidator{client: client}
}

// Invalidate publishes the collection name on the shared channel.
func (r *RedisInvalidator) Invalidate(ctx context.Context, col Collection) error {
	return r.client.Publish(ctx, invalidateChannel, string(col)).Err()
}

// Loaders fetch full collection snapshots from the store.
type Loaders struct {
	Tickets       func(ctx context.Context) ([]domain.Ticket, error)
	Users         func(ctx context.Context) ([]domain.User, error)
	AuditLogs     func(ctx context.Context) ([]domain.AuditLog, error)
	Notifications func(ctx context.Context) ([]domain.Notification, error)
}

// Listener keeps the container synchronized with the store: it performs an
// initial load of every collection and then reloads a collection whenever an
// invalidation for it arrives.
type Listener struct {
	client    *redis.Client
	container *Container
	loaders   Loaders
	logger    *zap.Logger
}

// NewListener creates the listener.
func NewListener(client *redis.Client, container *Container, loaders Loaders, logger *zap.Logger) *Listener {
	return &Listener{
		client:    client,
		container: container,
		loaders:   loaders,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled. A failed reload leaves the previous
// snapshot in place; the container simply stays stale until the next
// invalidation succeeds.
func (l *Listener) Run(ctx context.Context) {
	sub := l.client.Subscribe(ctx, invalidateChannel)
	defer sub.Close()

	for _, col := range []Collection{CollectionTickets, CollectionUsers, CollectionAuditLogs, CollectionNotifications} {
		l.reload(ctx, col)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			l.reload(ctx, Collection(msg.Payload))
		}
	}
}

func (l *Listener) reload(ctx context.Context, col Collection) {
	var err error
	switch col {
	case CollectionTickets:
		var tickets []domain.Ticket
		if tickets, err = l.loaders.Tickets(ctx); err == nil {
			l.container.ReplaceTickets(tickets)
		}
	case CollectionUsers:
		var users []domain.User
		if users, err = l.loaders.Users(ctx); err == nil {
			l.container.ReplaceUsers(users)
		}
	case CollectionAuditLogs:
		var logs []domain.AuditLog
		if logs, err = l.loaders.AuditLogs(ctx); err == nil {
			l.container.ReplaceAuditLogs(logs)
		}
	case CollectionNotifications:
		var notifications []domain.Notification
		if notifications, err = l.loaders.Notifications(ctx); err == nil {
			l.container.ReplaceNotifications(notifications)
		}
	default:
		l.logger.Warn("unknown collection in invalidation", zap.String("collection", string(col)))
		return
	}
	if err != nil {
		l.logger.Warn("snapshot reload failed", zap.String("collection", string(col)), zap.Error(err))
	}
}
