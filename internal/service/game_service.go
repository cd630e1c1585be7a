package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/validation"
)

// GameService manages the game catalog. Catalog writes are admin-only so
// the set of games stays curated.
type GameService struct {
	gameRepo repository.GameRepository
	userRepo repository.UserRepository
}

type GameInput struct {
	Title       string
	Description string
	Genre       string
	Developer   string
	ReleaseYear int
	CoverURL    string
}

type ListGamesInput struct {
	Genre  string
	Search string
	Limit  int
	Offset int
}

func NewGameService(gameRepo repository.GameRepository, userRepo repository.UserRepository) *GameService {
	return &GameService{gameRepo: gameRepo, userRepo: userRepo}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify builds a URL-safe identifier from a title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStrip.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *GameService) requireAdmin(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleAdmin {
		return models.NewForbiddenError("Admin role required")
	}
	return nil
}

func validateGameInput(in GameInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return models.NewValidationError("Title is required")
	}
	if len(in.Title) > 200 {
		return models.NewValidationError("Title too long (max 200 characters)")
	}
	if in.ReleaseYear != 0 && (in.ReleaseYear < 1950 || in.ReleaseYear > time.Now().Year()+2) {
		return models.NewValidationError("Invalid release year")
	}
	return nil
}

func (s *GameService) CreateGame(ctx context.Context, adminID uint, in GameInput) (*models.Game, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	if err := validateGameInput(in); err != nil {
		return nil, err
	}

	game := &models.Game{
		Title:       strings.TrimSpace(in.Title),
		Slug:        Slugify(in.Title),
		Description: in.Description,
		Genre:       in.Genre,
		Developer:   in.Developer,
		ReleaseYear: in.ReleaseYear,
		CoverURL:    in.CoverURL,
	}
	if err := validation.ValidateSlug(game.Slug); err != nil {
		return nil, models.NewValidationError("Title does not produce a usable URL slug: " + err.Error())
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) GetGame(ctx context.Context, slug string) (*models.Game, error) {
	return s.gameRepo.GetBySlug(ctx, slug)
}

func (s *GameService) ListGames(ctx context.Context, in ListGamesInput) ([]*models.Game, error) {
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 25
	}
	if in.Offset < 0 {
		in.Offset = 0
	}
	return s.gameRepo.List(ctx, in.Genre, in.Search, in.Limit, in.Offset)
}

func (s *GameService) UpdateGame(ctx context.Context, adminID, gameID uint, in GameInput) (*models.Game, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	if err := validateGameInput(in); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.Title = strings.TrimSpace(in.Title)
	game.Slug = Slugify(in.Title)
	if err := validation.ValidateSlug(game.Slug); err != nil {
		return nil, models.NewValidationError("Title does not produce a usable URL slug: " + err.Error())
	}
	game.Description = in.Description
	game.Genre = in.Genre
	game.Developer = in.Developer
	game.ReleaseYear = in.ReleaseYear
	game.CoverURL = in.CoverURL
	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) DeleteGame(ctx context.Context, adminID, gameID uint) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	return s.gameRepo.Delete(ctx, gameID)
}
