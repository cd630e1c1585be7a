package service

import (
	"context"
	"testing"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_GetTop(t *testing.T) {
	t.Parallel()

	t.Run("Decorates Rank And Level", func(t *testing.T) {
		t.Parallel()
		leaderboardRepo := noopLeaderboardRepo()
		leaderboardRepo.topAllTimeFn = func(_ context.Context, _, _ int) ([]repository.LeaderboardEntry, error) {
			return []repository.LeaderboardEntry{
				{UserID: 3, Username: "ace", XP: 450},
				{UserID: 7, Username: "brook", XP: 120},
			}, nil
		}

		svc := NewLeaderboardService(leaderboardRepo, noopUserRepo())
		entries, err := svc.GetTop(context.Background(), PeriodAllTime, 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 5, entries[0].Level)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, 2, entries[1].Level)
	})

	t.Run("Offset Shifts Rank", func(t *testing.T) {
		t.Parallel()
		leaderboardRepo := noopLeaderboardRepo()
		leaderboardRepo.topAllTimeFn = func(_ context.Context, _, offset int) ([]repository.LeaderboardEntry, error) {
			return []repository.LeaderboardEntry{{UserID: 9, XP: 50}}, nil
		}

		svc := NewLeaderboardService(leaderboardRepo, noopUserRepo())
		entries, err := svc.GetTop(context.Background(), PeriodAllTime, 10, 20)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 21, entries[0].Rank)
	})

	t.Run("Weekly Uses Window Query", func(t *testing.T) {
		t.Parallel()
		leaderboardRepo := noopLeaderboardRepo()
		var gotSince time.Time
		leaderboardRepo.topSinceFn = func(_ context.Context, since time.Time, _, _ int) ([]repository.LeaderboardEntry, error) {
			gotSince = since
			return nil, nil
		}

		svc := NewLeaderboardService(leaderboardRepo, noopUserRepo())
		now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }

		_, err := svc.GetTop(context.Background(), PeriodWeekly, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -7), gotSince)
	})

	t.Run("Invalid Period", func(t *testing.T) {
		t.Parallel()
		svc := NewLeaderboardService(noopLeaderboardRepo(), noopUserRepo())
		_, err := svc.GetTop(context.Background(), "yearly", 10, 0)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestLeaderboardService_GetUserRank(t *testing.T) {
	t.Parallel()

	t.Run("Rank And Percentile", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleUser, XP: 300}, nil
		}
		leaderboardRepo := noopLeaderboardRepo()
		leaderboardRepo.countRankedFn = func(_ context.Context) (int64, error) { return 50, nil }
		leaderboardRepo.countAboveFn = func(_ context.Context, xp int) (int64, error) {
			assert.Equal(t, 300, xp)
			return 4, nil
		}

		svc := NewLeaderboardService(leaderboardRepo, userRepo)
		rank, err := svc.GetUserRank(context.Background(), 1, PeriodAllTime)
		require.NoError(t, err)
		require.NotNil(t, rank)
		assert.Equal(t, 5, rank.Rank)
		assert.Equal(t, 50, rank.Total)
		// (50 - 5 + 1) / 50 * 100
		assert.Equal(t, 92.0, rank.Percentile)
	})

	t.Run("Ties Share A Rank", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleUser, XP: 100}, nil
		}
		leaderboardRepo := noopLeaderboardRepo()
		leaderboardRepo.countRankedFn = func(_ context.Context) (int64, error) { return 10, nil }
		// Three users tied at 100 XP; none strictly above.
		leaderboardRepo.countAboveFn = func(_ context.Context, _ int) (int64, error) { return 0, nil }

		svc := NewLeaderboardService(leaderboardRepo, userRepo)
		rank, err := svc.GetUserRank(context.Background(), 1, PeriodAllTime)
		require.NoError(t, err)
		require.NotNil(t, rank)
		assert.Equal(t, 1, rank.Rank)
	})

	t.Run("Staff Have No Rank", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleModerator, XP: 9000}, nil
		}

		svc := NewLeaderboardService(noopLeaderboardRepo(), userRepo)
		rank, err := svc.GetUserRank(context.Background(), 1, PeriodAllTime)
		require.NoError(t, err)
		assert.Nil(t, rank)
	})

	t.Run("Weekly Window XP", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		leaderboardRepo := noopLeaderboardRepo()
		leaderboardRepo.countRankedFn = func(_ context.Context) (int64, error) { return 4, nil }
		leaderboardRepo.windowXPFn = func(_ context.Context, _ uint, _ time.Time) (int, error) { return 35, nil }
		leaderboardRepo.countAboveSinceFn = func(_ context.Context, _ time.Time, xp int) (int64, error) {
			assert.Equal(t, 35, xp)
			return 1, nil
		}

		svc := NewLeaderboardService(leaderboardRepo, userRepo)
		rank, err := svc.GetUserRank(context.Background(), 1, PeriodWeekly)
		require.NoError(t, err)
		require.NotNil(t, rank)
		assert.Equal(t, 35, rank.XP)
		assert.Equal(t, 2, rank.Rank)
		assert.Equal(t, 75.0, rank.Percentile)
	})
}
