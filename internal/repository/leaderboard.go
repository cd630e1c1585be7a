package repository

import (
	"context"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// LeaderboardEntry is a single ranked row. Rank is filled in by the service
// layer from the row's position; Level is derived from XP.
type LeaderboardEntry struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Rank     int    `json:"rank"`
}

// LeaderboardRepository defines the ranking queries. Only accounts with the
// plain user role participate; moderators and admins are excluded so staff
// activity does not distort the board.
type LeaderboardRepository interface {
	TopAllTime(ctx context.Context, limit, offset int) ([]LeaderboardEntry, error)
	TopSince(ctx context.Context, since time.Time, limit, offset int) ([]LeaderboardEntry, error)
	CountRanked(ctx context.Context) (int64, error)
	CountAbove(ctx context.Context, xp int) (int64, error)
	WindowXP(ctx context.Context, userID uint, since time.Time) (int, error)
	CountAboveSince(ctx context.Context, since time.Time, xp int) (int64, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository returns a new LeaderboardRepository implementation.
func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// TopAllTime orders by total XP descending with user ID ascending as the
// tiebreak, so equal scores always list in a stable order.
func (r *leaderboardRepository) TopAllTime(ctx context.Context, limit, offset int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := readDB(r.db).WithContext(ctx).
		Model(&models.User{}).
		Select("users.id AS user_id, users.username, users.avatar, users.xp").
		Where("users.role = ?", models.RoleUser).
		Order("users.xp DESC, users.id ASC").
		Limit(limit).
		Offset(offset).
		Scan(&entries).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

// TopSince ranks by XP earned in the window, computed from the ledger.
func (r *leaderboardRepository) TopSince(ctx context.Context, since time.Time, limit, offset int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := readDB(r.db).WithContext(ctx).
		Model(&models.User{}).
		Select("users.id AS user_id, users.username, users.avatar, COALESCE(SUM(xp_events.amount), 0) AS xp").
		Joins("JOIN xp_events ON xp_events.user_id = users.id AND xp_events.created_at >= ?", since).
		Where("users.role = ?", models.RoleUser).
		Group("users.id, users.username, users.avatar").
		Order("xp DESC, users.id ASC").
		Limit(limit).
		Offset(offset).
		Scan(&entries).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *leaderboardRepository) CountRanked(ctx context.Context) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// CountAbove counts ranked users with strictly more XP; rank is that count
// plus one, so ties share a rank.
func (r *leaderboardRepository) CountAbove(ctx context.Context, xp int) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("role = ? AND xp > ?", models.RoleUser, xp).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *leaderboardRepository) WindowXP(ctx context.Context, userID uint, since time.Time) (int, error) {
	var total int
	err := readDB(r.db).WithContext(ctx).
		Model(&models.XPEvent{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Scan(&total).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return total, nil
}

func (r *leaderboardRepository) CountAboveSince(ctx context.Context, since time.Time, xp int) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("users.role = ?", models.RoleUser).
		Where("(SELECT COALESCE(SUM(amount), 0) FROM xp_events WHERE xp_events.user_id = users.id AND xp_events.created_at >= ?) > ?", since, xp).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
