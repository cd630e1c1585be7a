package service

import (
	"context"
	"log/slog"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/observability"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

// NotificationService manages the per-user notification inbox and pushes
// real-time copies over the websocket channel.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	publisher        EventPublisher
}

// NotifyInput describes a notification to deliver.
type NotifyInput struct {
	UserID  uint
	ActorID uint // zero when the event has no acting user
	Type    models.NotificationType
	Message string
	Payload models.JSONMap
}

func NewNotificationService(notificationRepo repository.NotificationRepository, publisher EventPublisher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// Notify persists the notification and publishes it to the user's live
// channel. Users are never notified about their own actions.
func (s *NotificationService) Notify(ctx context.Context, in NotifyInput) error {
	if !in.Type.Valid() {
		return models.NewValidationError("Invalid notification type")
	}
	if in.ActorID != 0 && in.ActorID == in.UserID {
		return nil
	}

	notification := &models.Notification{
		UserID:  in.UserID,
		Type:    in.Type,
		Message: in.Message,
		Payload: in.Payload,
	}
	if notification.Payload == nil {
		notification.Payload = models.JSONMap{}
	}
	if in.ActorID != 0 {
		notification.Payload["actor_id"] = in.ActorID
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return err
	}
	observability.NotificationsDispatchedTotal.WithLabelValues(string(in.Type)).Inc()

	if s.publisher != nil {
		if err := s.publisher.PublishUserEvent(ctx, in.UserID, notification); err != nil {
			slog.WarnContext(ctx, "failed to publish notification event", "user_id", in.UserID, "type", in.Type, "err", err)
		}
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID uint, limit, offset int) ([]*models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, userID, notificationID uint) error {
	return s.notificationRepo.Delete(ctx, userID, notificationID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}
