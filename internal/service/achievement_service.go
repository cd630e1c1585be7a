package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/cache"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/observability"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

// AchievementService evaluates achievement thresholds against user activity
// and hands out unlocks. Evaluation is idempotent: running it twice for the
// same state awards nothing the second time.
type AchievementService struct {
	achievementRepo repository.AchievementRepository
	userRepo        repository.UserRepository
	notifier        *NotificationService
}

func NewAchievementService(
	achievementRepo repository.AchievementRepository,
	userRepo repository.UserRepository,
	notifier *NotificationService,
) *AchievementService {
	return &AchievementService{
		achievementRepo: achievementRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

// CheckAndUnlock evaluates all achievement definitions for the user and
// unlocks any whose threshold is now met. Stats are gathered once per call.
// Returns the achievements newly unlocked by this evaluation.
func (s *AchievementService) CheckAndUnlock(ctx context.Context, userID uint) ([]*models.Achievement, error) {
	definitions, err := s.achievementRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.achievementRepo.UserStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	var unlocked []*models.Achievement
	for _, def := range definitions {
		current, ok := stats[def.Metric]
		if !ok || current < def.Threshold {
			continue
		}

		fresh, err := s.achievementRepo.Unlock(ctx, userID, def.ID)
		if err != nil {
			return unlocked, err
		}
		if !fresh {
			continue
		}

		observability.AchievementUnlocksTotal.WithLabelValues(def.Key).Inc()
		unlocked = append(unlocked, def)

		if def.XPReward > 0 {
			// The XP reward goes through the ledger like any other award.
			// It can cascade into total_xp or level achievements, which the
			// next evaluation picks up.
			if err := s.userRepo.AwardXP(ctx, userID, def.XPReward, models.XPReasonAchievement, "achievement", def.ID); err != nil {
				slog.ErrorContext(ctx, "failed to award achievement XP", "user_id", userID, "achievement", def.Key, "err", err)
			} else {
				observability.XPAwardsTotal.WithLabelValues(string(models.XPReasonAchievement)).Inc()
			}
		}

		s.notifyUnlock(ctx, userID, def)
	}

	if len(unlocked) > 0 {
		cache.Invalidate(ctx, cache.ProgressKey(userID))
	}
	return unlocked, nil
}

func (s *AchievementService) notifyUnlock(ctx context.Context, userID uint, def *models.Achievement) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, NotifyInput{
		UserID:  userID,
		Type:    models.NotificationAchievement,
		Message: fmt.Sprintf("Achievement unlocked: %s", def.Name),
		Payload: models.JSONMap{"achievement_key": def.Key, "xp_reward": def.XPReward},
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to send achievement notification", "user_id", userID, "achievement", def.Key, "err", err)
	}
}

// ListDefinitions returns the full achievement catalog. Secret achievements
// are included only when includeSecret is set; callers pass true for the
// requesting user's own unlocked list.
func (s *AchievementService) ListDefinitions(ctx context.Context, includeSecret bool) ([]*models.Achievement, error) {
	definitions, err := s.achievementRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	if includeSecret {
		return definitions, nil
	}
	visible := make([]*models.Achievement, 0, len(definitions))
	for _, def := range definitions {
		if !def.Secret {
			visible = append(visible, def)
		}
	}
	return visible, nil
}

// GetUserAchievements returns the user's unlocked achievements, newest first.
func (s *AchievementService) GetUserAchievements(ctx context.Context, userID uint) ([]*models.UserAchievement, error) {
	return s.achievementRepo.ListForUser(ctx, userID)
}

// GetProgress reports per-achievement progress for the user. Secret
// achievements appear only once unlocked.
func (s *AchievementService) GetProgress(ctx context.Context, userID uint) ([]models.AchievementProgress, error) {
	var progress []models.AchievementProgress
	err := cache.Aside(ctx, cache.ProgressKey(userID), &progress, cache.ProgressTTL, func() error {
		definitions, err := s.achievementRepo.ListDefinitions(ctx)
		if err != nil {
			return err
		}
		stats, err := s.achievementRepo.UserStats(ctx, userID)
		if err != nil {
			return err
		}
		unlocked, err := s.achievementRepo.ListForUser(ctx, userID)
		if err != nil {
			return err
		}
		unlockedAt := make(map[uint]*models.UserAchievement, len(unlocked))
		for _, ua := range unlocked {
			unlockedAt[ua.AchievementID] = ua
		}

		progress = make([]models.AchievementProgress, 0, len(definitions))
		for _, def := range definitions {
			ua, isUnlocked := unlockedAt[def.ID]
			if def.Secret && !isUnlocked {
				continue
			}

			current := stats[def.Metric]
			percent := 100.0
			if !isUnlocked && def.Threshold > 0 {
				if current > def.Threshold {
					current = def.Threshold
				}
				percent = float64(current) / float64(def.Threshold) * 100
			}

			p := models.AchievementProgress{
				Achievement: *def,
				Current:     current,
				Percent:     percent,
				Unlocked:    isUnlocked,
			}
			if isUnlocked {
				p.Current = def.Threshold
				p.UnlockedAt = &ua.UnlockedAt
			}
			progress = append(progress, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}
