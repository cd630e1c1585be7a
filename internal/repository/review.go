package repository

import (
	"context"
	"errors"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines interface for review operations
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review, award *XPAward) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	ListByGame(ctx context.Context, gameID uint, limit, offset int) ([]*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists the review and the author's XP award in one transaction.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review, award *XPAward) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("you have already reviewed this game")
			}
			return models.NewInternalError(err)
		}
		if award != nil {
			award.RefID = review.ID
		}
		return applyAward(tx, award)
	})
	if err != nil {
		return err
	}
	settleAward(ctx, award)
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := readDB(r.db).WithContext(ctx).
		Select("reviews.*, (SELECT COUNT(*) FROM likes WHERE likes.target_type = 'review' AND likes.target_id = reviews.id) as likes_count").
		Preload("User").
		First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) ListByGame(ctx context.Context, gameID uint, limit, offset int) ([]*models.Review, error) {
	var reviews []*models.Review
	err := readDB(r.db).WithContext(ctx).
		Select("reviews.*, (SELECT COUNT(*) FROM likes WHERE likes.target_type = 'review' AND likes.target_id = reviews.id) as likes_count").
		Preload("User").
		Where("game_id = ?", gameID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Review{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
