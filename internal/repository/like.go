package repository

import (
	"context"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for likes across all
// likeable content kinds.
type LikeRepository interface {
	Like(ctx context.Context, userID uint, target models.TargetRef, award *XPAward) (bool, error)
	Unlike(ctx context.Context, userID uint, target models.TargetRef) error
	IsLiked(ctx context.Context, userID uint, target models.TargetRef) (bool, error)
	Count(ctx context.Context, target models.TargetRef) (int64, error)
	CountGivenBy(ctx context.Context, userID uint) (int64, error)
	CountReceivedBy(ctx context.Context, userID uint) (int64, error)
	TargetAuthor(ctx context.Context, target models.TargetRef) (uint, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like inserts the row with ON CONFLICT DO NOTHING so racing duplicates are
// resolved by the database. Returns true if this call created the like. The
// author's XP award commits in the same transaction; a failed award rolls
// the like back. Nothing is awarded for a duplicate.
func (r *likeRepository) Like(ctx context.Context, userID uint, target models.TargetRef, award *XPAward) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(
			`INSERT INTO likes (user_id, target_type, target_id, created_at)
			 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT (user_id, target_type, target_id) DO NOTHING`,
			userID, target.Type, target.ID,
		)
		if result.Error != nil {
			return models.NewInternalError(result.Error)
		}
		created = result.RowsAffected == 1
		if !created {
			return nil
		}
		return applyAward(tx, award)
	})
	if err != nil {
		return false, err
	}
	if created {
		settleAward(ctx, award)
	}
	return created, nil
}

func (r *likeRepository) Unlike(ctx context.Context, userID uint, target models.TargetRef) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, target.Type, target.ID).
		Delete(&models.Like{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Like", target.String())
	}
	return nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID uint, target models.TargetRef) (bool, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, target.Type, target.ID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) Count(ctx context.Context, target models.TargetRef) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", target.Type, target.ID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *likeRepository) CountGivenBy(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// targetTables maps a target type to the table its rows live in.
var targetTables = map[models.TargetType]string{
	models.TargetPost:    "posts",
	models.TargetComment: "comments",
	models.TargetReview:  "reviews",
	models.TargetTip:     "tips",
	models.TargetWiki:    "wiki_entries",
}

// TargetAuthor resolves which user authored the referenced content, and
// doubles as the existence check before a like is accepted.
func (r *likeRepository) TargetAuthor(ctx context.Context, target models.TargetRef) (uint, error) {
	table, ok := targetTables[target.Type]
	if !ok {
		return 0, models.NewValidationError("Invalid like target type")
	}

	var authorID uint
	err := readDB(r.db).WithContext(ctx).
		Table(table).
		Select("user_id").
		Where("id = ? AND deleted_at IS NULL", target.ID).
		Scan(&authorID).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	if authorID == 0 {
		return 0, models.NewNotFoundError(string(target.Type), target.ID)
	}
	return authorID, nil
}

// CountReceivedBy totals likes on everything the user authored, across all
// five content tables.
func (r *likeRepository) CountReceivedBy(ctx context.Context, userID uint) (int64, error) {
	subqueries := map[models.TargetType]string{
		models.TargetPost:    "SELECT id FROM posts WHERE user_id = ? AND deleted_at IS NULL",
		models.TargetComment: "SELECT id FROM comments WHERE user_id = ? AND deleted_at IS NULL",
		models.TargetReview:  "SELECT id FROM reviews WHERE user_id = ? AND deleted_at IS NULL",
		models.TargetTip:     "SELECT id FROM tips WHERE user_id = ? AND deleted_at IS NULL",
		models.TargetWiki:    "SELECT id FROM wiki_entries WHERE user_id = ? AND deleted_at IS NULL",
	}

	var total int64
	for targetType, sub := range subqueries {
		var count int64
		err := readDB(r.db).WithContext(ctx).
			Model(&models.Like{}).
			Where("target_type = ? AND target_id IN ("+sub+")", targetType, userID).
			Count(&count).Error
		if err != nil {
			return 0, models.NewInternalError(err)
		}
		total += count
	}
	return total, nil
}
