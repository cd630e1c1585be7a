package service

import (
	"context"
	"math"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/cache"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

// Leaderboard periods.
const (
	PeriodAllTime = "all"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

const maxLeaderboardLimit = 100

// UserRank describes where one user stands on a leaderboard.
type UserRank struct {
	UserID     uint    `json:"user_id"`
	Period     string  `json:"period"`
	XP         int     `json:"xp"`
	Rank       int     `json:"rank"`
	Total      int     `json:"total"`
	Percentile float64 `json:"percentile"`
}

// LeaderboardService ranks users by XP. Staff accounts are excluded from
// ranking entirely; asking for a moderator's rank yields no result rather
// than an error.
type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	userRepo        repository.UserRepository
	now             func() time.Time
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository, userRepo repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

func periodStart(period string, now time.Time) (time.Time, bool) {
	switch period {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7), true
	case PeriodMonthly:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// GetTop returns a page of the leaderboard for the given period. The
// all-time board is served through the cache since it is the hot path;
// windowed boards hit the ledger directly.
func (s *LeaderboardService) GetTop(ctx context.Context, period string, limit, offset int) ([]repository.LeaderboardEntry, error) {
	if limit <= 0 || limit > maxLeaderboardLimit {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	switch period {
	case "", PeriodAllTime:
		return s.topAllTime(ctx, limit, offset)
	case PeriodWeekly, PeriodMonthly:
		since, _ := periodStart(period, s.now())
		entries, err := s.leaderboardRepo.TopSince(ctx, since, limit, offset)
		if err != nil {
			return nil, err
		}
		s.decorate(entries, offset)
		return entries, nil
	default:
		return nil, models.NewValidationError("Invalid leaderboard period")
	}
}

func (s *LeaderboardService) topAllTime(ctx context.Context, limit, offset int) ([]repository.LeaderboardEntry, error) {
	var entries []repository.LeaderboardEntry
	// Only the first page is cached; deeper pages are rare.
	if offset == 0 {
		err := cache.Aside(ctx, cache.LeaderboardKey(PeriodAllTime, limit), &entries, cache.LeaderboardTTL, func() error {
			var err error
			entries, err = s.leaderboardRepo.TopAllTime(ctx, limit, 0)
			if err != nil {
				return err
			}
			s.decorate(entries, 0)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return entries, nil
	}

	entries, err := s.leaderboardRepo.TopAllTime(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	s.decorate(entries, offset)
	return entries, nil
}

// decorate fills the derived fields a ranking row carries.
func (s *LeaderboardService) decorate(entries []repository.LeaderboardEntry, offset int) {
	for i := range entries {
		entries[i].Rank = offset + i + 1
		entries[i].Level = models.LevelForXP(entries[i].XP)
	}
}

// GetUserRank computes a user's standing for the period. Rank is one plus
// the number of ranked users with strictly more XP, so ties share a rank.
// Returns (nil, nil) for staff accounts, which do not participate.
func (s *LeaderboardService) GetUserRank(ctx context.Context, userID uint, period string) (*UserRank, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleUser {
		return nil, nil
	}

	total, err := s.leaderboardRepo.CountRanked(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	var xp int
	var above int64
	switch period {
	case "", PeriodAllTime:
		period = PeriodAllTime
		xp = user.XP
		above, err = s.leaderboardRepo.CountAbove(ctx, xp)
	case PeriodWeekly, PeriodMonthly:
		since, _ := periodStart(period, s.now())
		xp, err = s.leaderboardRepo.WindowXP(ctx, userID, since)
		if err != nil {
			return nil, err
		}
		above, err = s.leaderboardRepo.CountAboveSince(ctx, since, xp)
	default:
		return nil, models.NewValidationError("Invalid leaderboard period")
	}
	if err != nil {
		return nil, err
	}

	rank := int(above) + 1
	percentile := float64(total-int64(rank)+1) / float64(total) * 100

	return &UserRank{
		UserID:     userID,
		Period:     period,
		XP:         xp,
		Rank:       rank,
		Total:      int(total),
		Percentile: math.Round(percentile*10) / 10,
	}, nil
}
