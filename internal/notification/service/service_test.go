package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	notificationModel "github.com/tdnguyen-dev/sanbong/internal/notification/model"
	"github.com/tdnguyen-dev/sanbong/internal/notification/repository"
)

func setup(t *testing.T) Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&notificationModel.Notification{})
	require.NoError(t, err)

	return New(repository.New(db), zap.NewNop().Sugar())
}

func TestService_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the notification unread", func(t *testing.T) {
		svc := setup(t)
		matchID := uint(7)

		err := svc.Notify(ctx, 1, notificationModel.TypeMatchRequest,
			"New match request", "Someone wants to play.", &matchID)
		require.NoError(t, err)

		list, err := svc.GetByUser(ctx, 1, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.False(t, list[0].IsRead)
		require.NotNil(t, list[0].RelatedID)
		assert.Equal(t, matchID, *list[0].RelatedID)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		svc := setup(t)

		err := svc.Notify(ctx, 1, "SMOKE_SIGNAL", "t", "c", nil)
		assert.ErrorIs(t, err, notificationModel.ErrInvalidType)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the created notification", func(t *testing.T) {
		svc := setup(t)
		postID := uint(3)

		n, err := svc.Create(ctx, &notificationModel.CreateNotificationRequest{
			UserID:    4,
			Type:      notificationModel.TypeMessageReceived,
			Title:     "New message",
			Content:   "You have a new message.",
			RelatedID: &postID,
		})
		require.NoError(t, err)
		assert.NotZero(t, n.ID)
		assert.False(t, n.IsRead)

		list, err := svc.GetByUser(ctx, 4, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, n.ID, list[0].ID)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Create(ctx, &notificationModel.CreateNotificationRequest{
			UserID: 4, Type: "SMOKE_SIGNAL", Title: "t", Content: "c",
		})
		assert.ErrorIs(t, err, notificationModel.ErrInvalidType)
	})
}

func TestService_ReadTracking(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	require.NoError(t, svc.Notify(ctx, 1, notificationModel.TypeMatchConfirmed, "a", "b", nil))
	require.NoError(t, svc.Notify(ctx, 1, notificationModel.TypeMessageReceived, "c", "d", nil))
	require.NoError(t, svc.Notify(ctx, 2, notificationModel.TypeTeamInvitation, "e", "f", nil))

	count, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	list, err := svc.GetByUser(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	t.Run("only the recipient may mark read", func(t *testing.T) {
		err := svc.MarkAsRead(ctx, list[0].ID, 2)
		assert.ErrorIs(t, err, notificationModel.ErrNotRecipient)
	})

	require.NoError(t, svc.MarkAsRead(ctx, list[0].ID, 1))
	count, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, svc.MarkAllAsRead(ctx, 1))
	count, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The other user's notification is untouched.
	count, err = svc.UnreadCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	require.NoError(t, svc.Notify(ctx, 1, notificationModel.TypeMatchCancelled, "a", "b", nil))
	list, err := svc.GetByUser(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	t.Run("only the recipient may delete", func(t *testing.T) {
		err := svc.Delete(ctx, list[0].ID, 2)
		assert.ErrorIs(t, err, notificationModel.ErrNotRecipient)
	})

	require.NoError(t, svc.Delete(ctx, list[0].ID, 1))
	err = svc.Delete(ctx, list[0].ID, 1)
	assert.ErrorIs(t, err, notificationModel.ErrNotificationNotFound)
}
