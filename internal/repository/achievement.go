package repository

import (
	"context"
	"errors"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// AchievementRepository defines interface for achievement operations
type AchievementRepository interface {
	ListDefinitions(ctx context.Context) ([]*models.Achievement, error)
	GetByKey(ctx context.Context, key string) (*models.Achievement, error)
	Unlock(ctx context.Context, userID, achievementID uint) (bool, error)
	ListForUser(ctx context.Context, userID uint) ([]*models.UserAchievement, error)
	UserStats(ctx context.Context, userID uint) (map[models.AchievementMetric]int, error)
}

type achievementRepository struct {
	db    *gorm.DB
	likes LikeRepository
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *gorm.DB, likes LikeRepository) AchievementRepository {
	return &achievementRepository{db: db, likes: likes}
}

func (r *achievementRepository) ListDefinitions(ctx context.Context) ([]*models.Achievement, error) {
	var achievements []*models.Achievement
	err := readDB(r.db).WithContext(ctx).
		Order("threshold ASC, id ASC").
		Find(&achievements).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return achievements, nil
}

func (r *achievementRepository) GetByKey(ctx context.Context, key string) (*models.Achievement, error) {
	var achievement models.Achievement
	err := readDB(r.db).WithContext(ctx).
		Where("key = ?", key).
		First(&achievement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Achievement", key)
		}
		return nil, models.NewInternalError(err)
	}
	return &achievement, nil
}

// Unlock records an achievement for a user. Returns true only when the row
// was newly inserted, so repeated evaluations never double-award.
func (r *achievementRepository) Unlock(ctx context.Context, userID, achievementID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		"INSERT INTO user_achievements (user_id, achievement_id, unlocked_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT (user_id, achievement_id) DO NOTHING",
		userID, achievementID,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *achievementRepository) ListForUser(ctx context.Context, userID uint) ([]*models.UserAchievement, error) {
	var unlocked []*models.UserAchievement
	err := readDB(r.db).WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&unlocked).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return unlocked, nil
}

// UserStats gathers the per-metric counters achievement thresholds are
// checked against. Counts run against the read replica when one exists.
func (r *achievementRepository) UserStats(ctx context.Context, userID uint) (map[models.AchievementMetric]int, error) {
	db := readDB(r.db).WithContext(ctx)
	stats := make(map[models.AchievementMetric]int)

	var user models.User
	if err := db.Select("id, xp").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", userID)
		}
		return nil, models.NewInternalError(err)
	}
	stats[models.MetricTotalXP] = user.XP
	stats[models.MetricLevel] = models.LevelForXP(user.XP)

	counts := []struct {
		metric models.AchievementMetric
		model  interface{}
		where  string
	}{
		{models.MetricPostsApproved, &models.Post{}, "user_id = ? AND status = 'approved'"},
		{models.MetricCommentsWritten, &models.Comment{}, "user_id = ?"},
		{models.MetricReviewsWritten, &models.Review{}, "user_id = ?"},
		{models.MetricTipsShared, &models.Tip{}, "user_id = ?"},
		{models.MetricWikiEdits, &models.WikiEntry{}, "user_id = ?"},
	}
	for _, c := range counts {
		var n int64
		if err := db.Model(c.model).Where(c.where, userID).Count(&n).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		stats[c.metric] = int(n)
	}

	received, err := r.likes.CountReceivedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats[models.MetricLikesReceived] = int(received)

	given, err := r.likes.CountGivenBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats[models.MetricLikesGiven] = int(given)

	return stats, nil
}
