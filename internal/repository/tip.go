package repository

import (
	"context"
	"errors"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// TipRepository defines interface for tip operations
type TipRepository interface {
	Create(ctx context.Context, tip *models.Tip, award *XPAward) error
	GetByID(ctx context.Context, id uint) (*models.Tip, error)
	ListByGame(ctx context.Context, gameID uint, category string, limit, offset int) ([]*models.Tip, error)
	Update(ctx context.Context, tip *models.Tip) error
	Delete(ctx context.Context, id uint) error
}

type tipRepository struct {
	db *gorm.DB
}

// NewTipRepository creates a new TipRepository
func NewTipRepository(db *gorm.DB) TipRepository {
	return &tipRepository{db: db}
}

// Create persists the tip and the author's XP award in one transaction.
func (r *tipRepository) Create(ctx context.Context, tip *models.Tip, award *XPAward) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tip).Error; err != nil {
			return models.NewInternalError(err)
		}
		if award != nil {
			award.RefID = tip.ID
		}
		return applyAward(tx, award)
	})
	if err != nil {
		return err
	}
	settleAward(ctx, award)
	return nil
}

func (r *tipRepository) GetByID(ctx context.Context, id uint) (*models.Tip, error) {
	var tip models.Tip
	err := readDB(r.db).WithContext(ctx).
		Select("tips.*, (SELECT COUNT(*) FROM likes WHERE likes.target_type = 'tip' AND likes.target_id = tips.id) as likes_count").
		Preload("User").
		First(&tip, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tip", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tip, nil
}

func (r *tipRepository) ListByGame(ctx context.Context, gameID uint, category string, limit, offset int) ([]*models.Tip, error) {
	var tips []*models.Tip
	query := readDB(r.db).WithContext(ctx).
		Select("tips.*, (SELECT COUNT(*) FROM likes WHERE likes.target_type = 'tip' AND likes.target_id = tips.id) as likes_count").
		Preload("User").
		Where("game_id = ?", gameID)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tips).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tips, nil
}

func (r *tipRepository) Update(ctx context.Context, tip *models.Tip) error {
	if err := r.db.WithContext(ctx).Save(tip).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tipRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Tip{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
