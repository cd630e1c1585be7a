package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/observability"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

// EventPublisher pushes a real-time event to a user's websocket channel.
// Publishing is best-effort; a delivery failure never fails the operation
// that produced the event.
type EventPublisher interface {
	PublishUserEvent(ctx context.Context, userID uint, event any) error
}

// XPService owns experience accounting. All XP mutations in the system go
// through Award so the ledger stays complete and level-ups are always
// detected.
type XPService struct {
	userRepo repository.UserRepository
	notifier *NotificationService
}

func NewXPService(userRepo repository.UserRepository, notifier *NotificationService) *XPService {
	return &XPService{userRepo: userRepo, notifier: notifier}
}

// Award grants XP to a user and records the reason in the ledger. When the
// increment crosses a level boundary the user gets a level_up notification.
func (s *XPService) Award(ctx context.Context, userID uint, amount int, reason models.XPReason, refType string, refID uint) error {
	if amount <= 0 {
		return models.NewValidationError("XP amount must be positive")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	levelBefore := models.LevelForXP(user.XP)

	if err := s.userRepo.AwardXP(ctx, userID, amount, reason, refType, refID); err != nil {
		return err
	}
	observability.XPAwardsTotal.WithLabelValues(string(reason)).Inc()

	levelAfter := models.LevelForXP(user.XP + amount)
	if levelAfter > levelBefore {
		s.notifyLevelUp(ctx, userID, levelAfter)
	}
	return nil
}

// Stage prepares an award that a repository will commit atomically with its
// own writes. The returned settle func must run after the repository call
// succeeds; it records the metric and any level-up notification. Callers
// that abort before the repository call can simply drop both.
func (s *XPService) Stage(ctx context.Context, userID uint, amount int, reason models.XPReason, refType string, refID uint) (*repository.XPAward, func(context.Context), error) {
	if amount <= 0 {
		return nil, nil, models.NewValidationError("XP amount must be positive")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	levelBefore := models.LevelForXP(user.XP)

	award := &repository.XPAward{
		UserID:  userID,
		Amount:  amount,
		Reason:  reason,
		RefType: refType,
		RefID:   refID,
	}
	settle := func(ctx context.Context) {
		observability.XPAwardsTotal.WithLabelValues(string(reason)).Inc()
		if levelAfter := models.LevelForXP(user.XP + amount); levelAfter > levelBefore {
			s.notifyLevelUp(ctx, userID, levelAfter)
		}
	}
	return award, settle, nil
}

func (s *XPService) notifyLevelUp(ctx context.Context, userID uint, level int) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, NotifyInput{
		UserID:  userID,
		Type:    models.NotificationLevelUp,
		Message: fmt.Sprintf("You reached level %d!", level),
		Payload: models.JSONMap{"level": level},
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to send level-up notification", "user_id", userID, "level", level, "err", err)
	}
}
