package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/cache"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// GameRepository defines interface for game catalog operations
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	GetBySlug(ctx context.Context, slug string) (*models.Game, error)
	List(ctx context.Context, genre, search string, limit, offset int) ([]*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id uint) error
}

type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// ratingColumns attaches aggregate review data to a game query.
const ratingColumns = "games.*, " +
	"(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE reviews.game_id = games.id AND reviews.deleted_at IS NULL) as avg_rating, " +
	"(SELECT COUNT(*) FROM reviews WHERE reviews.game_id = games.id AND reviews.deleted_at IS NULL) as reviews_count"

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("a game with this title already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *gameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	err := readDB(r.db).WithContext(ctx).
		Select(ratingColumns).
		First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Game", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &game, nil
}

func (r *gameRepository) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	var game models.Game
	err := cache.Aside(ctx, cache.GameKey(slug), &game, cache.GameTTL, func() error {
		err := readDB(r.db).WithContext(ctx).
			Select(ratingColumns).
			Where("slug = ?", slug).
			First(&game).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Game", slug)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) List(ctx context.Context, genre, search string, limit, offset int) ([]*models.Game, error) {
	var games []*models.Game
	query := readDB(r.db).WithContext(ctx).
		Model(&models.Game{}).
		Select(ratingColumns)

	if genre != "" {
		query = query.Where("genre = ?", genre)
	}
	if search != "" {
		pattern := fmt.Sprintf("%%%s%%", search)
		query = query.Where("LOWER(title) LIKE LOWER(?)", pattern)
	}

	err := query.Order("title ASC").
		Limit(limit).
		Offset(offset).
		Find(&games).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return games, nil
}

func (r *gameRepository) Update(ctx context.Context, game *models.Game) error {
	if err := r.db.WithContext(ctx).Save(game).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("a game with this title already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateGame(ctx, game.Slug)
	return nil
}

func (r *gameRepository) Delete(ctx context.Context, id uint) error {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Game", id)
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&game).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateGame(ctx, game.Slug)
	return nil
}
