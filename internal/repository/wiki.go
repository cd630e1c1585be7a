package repository

import (
	"context"
	"errors"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// WikiRepository defines interface for wiki entry operations
type WikiRepository interface {
	Create(ctx context.Context, entry *models.WikiEntry, award *XPAward) error
	GetBySlug(ctx context.Context, gameID uint, slug string) (*models.WikiEntry, error)
	ListByGame(ctx context.Context, gameID uint, limit, offset int) ([]*models.WikiEntry, error)
	UpdateBody(ctx context.Context, entry *models.WikiEntry, title, body string, editorID uint, award *XPAward) error
	Delete(ctx context.Context, id uint) error
}

type wikiRepository struct {
	db *gorm.DB
}

// NewWikiRepository creates a new WikiRepository
func NewWikiRepository(db *gorm.DB) WikiRepository {
	return &wikiRepository{db: db}
}

// Create persists the page and the author's XP award in one transaction.
func (r *wikiRepository) Create(ctx context.Context, entry *models.WikiEntry, award *XPAward) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("a wiki entry with this slug already exists for this game")
			}
			return models.NewInternalError(err)
		}
		if award != nil {
			award.RefID = entry.ID
		}
		return applyAward(tx, award)
	})
	if err != nil {
		return err
	}
	settleAward(ctx, award)
	return nil
}

func (r *wikiRepository) GetBySlug(ctx context.Context, gameID uint, slug string) (*models.WikiEntry, error) {
	var entry models.WikiEntry
	err := readDB(r.db).WithContext(ctx).
		Select("wiki_entries.*, (SELECT COUNT(*) FROM likes WHERE likes.target_type = 'wiki' AND likes.target_id = wiki_entries.id) as likes_count").
		Preload("User").
		Where("game_id = ? AND slug = ?", gameID, slug).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("WikiEntry", slug)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *wikiRepository) ListByGame(ctx context.Context, gameID uint, limit, offset int) ([]*models.WikiEntry, error) {
	var entries []*models.WikiEntry
	err := readDB(r.db).WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("title ASC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

// UpdateBody applies an edit to an entry. The edit bumps the version and
// records the editor as the latest author. A concurrent edit loses the
// version guard and surfaces as a conflict.
func (r *wikiRepository) UpdateBody(ctx context.Context, entry *models.WikiEntry, title, body string, editorID uint, award *XPAward) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.WikiEntry{}).
			Where("id = ? AND version = ?", entry.ID, entry.Version).
			Updates(map[string]interface{}{
				"title":   title,
				"body":    body,
				"user_id": editorID,
				"version": gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return models.NewInternalError(result.Error)
		}
		if result.RowsAffected == 0 {
			return models.NewConflictError("wiki entry was modified by another editor")
		}
		return applyAward(tx, award)
	})
	if err != nil {
		return err
	}
	settleAward(ctx, award)
	entry.Title = title
	entry.Body = body
	entry.UserID = editorID
	entry.Version++
	return nil
}

func (r *wikiRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.WikiEntry{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("WikiEntry", id)
	}
	return nil
}
