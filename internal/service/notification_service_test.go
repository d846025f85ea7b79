package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/internal/state"
)

func TestNotificationCreateAndMarkRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	invalidator := &fakeInvalidator{}
	svc := NewNotificationService(repo, nil, invalidator, zap.NewNop())

	n, err := svc.Create(context.Background(), domain.NotificationDeadline, `Ticket "modem swap" is due today`, "t1")
	require.NoError(t, err)
	assert.False(t, n.IsRead)
	assert.Equal(t, 1, invalidator.count(state.CollectionNotifications))

	require.NoError(t, svc.MarkRead(context.Background(), n.ID))
	listed, err := svc.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].IsRead)
	assert.Equal(t, 2, invalidator.count(state.CollectionNotifications))
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{}, nil, nil, zap.NewNop())
	assert.Error(t, svc.MarkRead(context.Background(), "missing"))
}
