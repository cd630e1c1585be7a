package service

import (
	"context"
	"testing"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Notify(t *testing.T) {
	t.Parallel()

	t.Run("Persists And Publishes", func(t *testing.T) {
		t.Parallel()
		notificationRepo := noopNotificationRepo()
		var created *models.Notification
		notificationRepo.createFn = func(_ context.Context, n *models.Notification) error {
			created = n
			return nil
		}
		publisher := &publisherStub{}

		svc := NewNotificationService(notificationRepo, publisher)
		err := svc.Notify(context.Background(), NotifyInput{
			UserID:  4,
			ActorID: 1,
			Type:    models.NotificationLike,
			Message: "someone liked your tip",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(4), created.UserID)
		assert.EqualValues(t, uint(1), created.Payload["actor_id"])
		require.Len(t, publisher.users, 1)
		assert.Equal(t, uint(4), publisher.users[0])
	})

	t.Run("Skips Own Actions", func(t *testing.T) {
		t.Parallel()
		notificationRepo := noopNotificationRepo()
		notificationRepo.createFn = func(_ context.Context, _ *models.Notification) error {
			t.Error("self-action must not create a notification")
			return nil
		}

		svc := NewNotificationService(notificationRepo, nil)
		err := svc.Notify(context.Background(), NotifyInput{
			UserID:  4,
			ActorID: 4,
			Type:    models.NotificationComment,
			Message: "commented on own post",
		})
		require.NoError(t, err)
	})

	t.Run("Rejects Unknown Type", func(t *testing.T) {
		t.Parallel()
		svc := NewNotificationService(noopNotificationRepo(), nil)
		err := svc.Notify(context.Background(), NotifyInput{UserID: 4, Type: "telegram"})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Publish Failure Does Not Fail Delivery", func(t *testing.T) {
		t.Parallel()
		publisher := &publisherStub{err: assert.AnError}
		svc := NewNotificationService(noopNotificationRepo(), publisher)
		err := svc.Notify(context.Background(), NotifyInput{
			UserID:  4,
			Type:    models.NotificationLevelUp,
			Message: "level up",
		})
		assert.NoError(t, err)
	})
}
