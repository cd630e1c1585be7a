package service

import (
	"context"
	"testing"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func achievementDefs() []*models.Achievement {
	return []*models.Achievement{
		{ID: 1, Key: "first-post", Name: "First Post", Metric: models.MetricPostsApproved, Threshold: 1, XPReward: 10},
		{ID: 2, Key: "prolific-poster", Name: "Prolific Poster", Metric: models.MetricPostsApproved, Threshold: 25, XPReward: 50},
		{ID: 3, Key: "veteran", Name: "Veteran", Metric: models.MetricLevel, Threshold: 10, Secret: true},
	}
}

func TestAchievementService_CheckAndUnlock(t *testing.T) {
	t.Parallel()

	t.Run("Unlocks Met Thresholds Only", func(t *testing.T) {
		t.Parallel()
		achievementRepo := noopAchievementRepo()
		achievementRepo.listDefinitionsFn = func(_ context.Context) ([]*models.Achievement, error) {
			return achievementDefs(), nil
		}
		achievementRepo.userStatsFn = func(_ context.Context, _ uint) (map[models.AchievementMetric]int, error) {
			return map[models.AchievementMetric]int{
				models.MetricPostsApproved: 3,
				models.MetricLevel:         2,
			}, nil
		}
		var unlockedIDs []uint
		achievementRepo.unlockFn = func(_ context.Context, _, achievementID uint) (bool, error) {
			unlockedIDs = append(unlockedIDs, achievementID)
			return true, nil
		}

		svc := NewAchievementService(achievementRepo, noopUserRepo(), nil)
		unlocked, err := svc.CheckAndUnlock(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, unlocked, 1)
		assert.Equal(t, "first-post", unlocked[0].Key)
		assert.Equal(t, []uint{1}, unlockedIDs)
	})

	t.Run("Idempotent On Repeat", func(t *testing.T) {
		t.Parallel()
		achievementRepo := noopAchievementRepo()
		achievementRepo.listDefinitionsFn = func(_ context.Context) ([]*models.Achievement, error) {
			return achievementDefs(), nil
		}
		achievementRepo.userStatsFn = func(_ context.Context, _ uint) (map[models.AchievementMetric]int, error) {
			return map[models.AchievementMetric]int{models.MetricPostsApproved: 3}, nil
		}
		// Database reports the row already exists.
		achievementRepo.unlockFn = func(_ context.Context, _, _ uint) (bool, error) {
			return false, nil
		}

		userRepo := noopUserRepo()
		awards := 0
		userRepo.awardXPFn = func(_ context.Context, _ uint, _ int, _ models.XPReason, _ string, _ uint) error {
			awards++
			return nil
		}

		svc := NewAchievementService(achievementRepo, userRepo, nil)
		unlocked, err := svc.CheckAndUnlock(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, unlocked)
		assert.Zero(t, awards, "a repeated evaluation must not re-award XP")
	})

	t.Run("Fresh Unlock Awards XP And Notifies", func(t *testing.T) {
		t.Parallel()
		achievementRepo := noopAchievementRepo()
		achievementRepo.listDefinitionsFn = func(_ context.Context) ([]*models.Achievement, error) {
			return achievementDefs()[:1], nil
		}
		achievementRepo.userStatsFn = func(_ context.Context, _ uint) (map[models.AchievementMetric]int, error) {
			return map[models.AchievementMetric]int{models.MetricPostsApproved: 1}, nil
		}

		userRepo := noopUserRepo()
		var awardedAmount int
		var awardedReason models.XPReason
		userRepo.awardXPFn = func(_ context.Context, _ uint, amount int, reason models.XPReason, _ string, _ uint) error {
			awardedAmount = amount
			awardedReason = reason
			return nil
		}

		notificationRepo := noopNotificationRepo()
		var created []*models.Notification
		notificationRepo.createFn = func(_ context.Context, n *models.Notification) error {
			created = append(created, n)
			return nil
		}
		notifier := NewNotificationService(notificationRepo, nil)

		svc := NewAchievementService(achievementRepo, userRepo, notifier)
		unlocked, err := svc.CheckAndUnlock(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, unlocked, 1)
		assert.Equal(t, 10, awardedAmount)
		assert.Equal(t, models.XPReasonAchievement, awardedReason)
		require.Len(t, created, 1)
		assert.Equal(t, models.NotificationAchievement, created[0].Type)
		assert.Equal(t, "first-post", created[0].Payload["achievement_key"])
	})
}

func TestAchievementService_ListDefinitions_HidesSecret(t *testing.T) {
	t.Parallel()
	achievementRepo := noopAchievementRepo()
	achievementRepo.listDefinitionsFn = func(_ context.Context) ([]*models.Achievement, error) {
		return achievementDefs(), nil
	}
	svc := NewAchievementService(achievementRepo, noopUserRepo(), nil)

	visible, err := svc.ListDefinitions(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	all, err := svc.ListDefinitions(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAchievementService_GetProgress(t *testing.T) {
	t.Parallel()
	achievementRepo := noopAchievementRepo()
	achievementRepo.listDefinitionsFn = func(_ context.Context) ([]*models.Achievement, error) {
		return achievementDefs(), nil
	}
	achievementRepo.userStatsFn = func(_ context.Context, _ uint) (map[models.AchievementMetric]int, error) {
		return map[models.AchievementMetric]int{
			models.MetricPostsApproved: 5,
			models.MetricLevel:         2,
		}, nil
	}
	achievementRepo.listForUserFn = func(_ context.Context, _ uint) ([]*models.UserAchievement, error) {
		return []*models.UserAchievement{{UserID: 1, AchievementID: 1}}, nil
	}

	svc := NewAchievementService(achievementRepo, noopUserRepo(), nil)
	progress, err := svc.GetProgress(context.Background(), 1)
	require.NoError(t, err)

	// Secret and locked stays hidden, so two rows.
	require.Len(t, progress, 2)

	assert.True(t, progress[0].Unlocked)
	assert.Equal(t, 100.0, progress[0].Percent)
	assert.Equal(t, 1, progress[0].Current)

	assert.False(t, progress[1].Unlocked)
	assert.Equal(t, 5, progress[1].Current)
	assert.Equal(t, 20.0, progress[1].Percent)
}
