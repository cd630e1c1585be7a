package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

// ContentService covers the per-game contribution types: reviews, tips and
// wiki entries. Unlike feed posts these publish immediately without
// moderation, so their XP is awarded at creation time.
type ContentService struct {
	reviewRepo   repository.ReviewRepository
	tipRepo      repository.TipRepository
	wikiRepo     repository.WikiRepository
	gameRepo     repository.GameRepository
	userRepo     repository.UserRepository
	xp           *XPService
	achievements *AchievementService
}

type CreateReviewInput struct {
	UserID uint
	GameID uint
	Title  string
	Body   string
	Rating int
}

type CreateTipInput struct {
	UserID   uint
	GameID   uint
	Title    string
	Body     string
	Category string
}

type WikiEntryInput struct {
	UserID uint
	GameID uint
	Title  string
	Body   string
}

func NewContentService(
	reviewRepo repository.ReviewRepository,
	tipRepo repository.TipRepository,
	wikiRepo repository.WikiRepository,
	gameRepo repository.GameRepository,
	userRepo repository.UserRepository,
	xp *XPService,
	achievements *AchievementService,
) *ContentService {
	return &ContentService{
		reviewRepo:   reviewRepo,
		tipRepo:      tipRepo,
		wikiRepo:     wikiRepo,
		gameRepo:     gameRepo,
		userRepo:     userRepo,
		xp:           xp,
		achievements: achievements,
	}
}

func (s *ContentService) requireContributor(ctx context.Context, userID, gameID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.CanPost(time.Now()) {
		return models.NewForbiddenError("Your account is not allowed to contribute right now")
	}
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		return err
	}
	return nil
}

// sweepAchievements runs the post-contribution achievement pass. Failures
// are logged, not returned; the poll-driven model picks them up on the next
// qualifying action.
func (s *ContentService) sweepAchievements(ctx context.Context, userID uint) {
	if _, err := s.achievements.CheckAndUnlock(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "achievement evaluation failed after contribution", "user_id", userID, "err", err)
	}
}

// CreateReview adds a rated review. One review per user per game; the
// database uniqueness constraint backs this up under races.
func (s *ContentService) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Title and body are required")
	}
	if err := s.requireContributor(ctx, in.UserID, in.GameID); err != nil {
		return nil, err
	}

	award, settle, err := s.xp.Stage(ctx, in.UserID, models.XPForReview, models.XPReasonReview, "review", 0)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID: in.UserID,
		GameID: in.GameID,
		Title:  in.Title,
		Body:   in.Body,
		Rating: in.Rating,
	}
	if err := s.reviewRepo.Create(ctx, review, award); err != nil {
		return nil, err
	}
	settle(ctx)

	s.sweepAchievements(ctx, in.UserID)
	return review, nil
}

func (s *ContentService) GetReviews(ctx context.Context, gameID uint, limit, offset int) ([]*models.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.reviewRepo.ListByGame(ctx, gameID, limit, offset)
}

// DeleteReview removes a review. Author or moderator.
func (s *ContentService) DeleteReview(ctx context.Context, userID, reviewID uint) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrModerator(ctx, userID, review.UserID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}

// CreateTip adds a gameplay tip.
func (s *ContentService) CreateTip(ctx context.Context, in CreateTipInput) (*models.Tip, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Title and body are required")
	}
	if err := s.requireContributor(ctx, in.UserID, in.GameID); err != nil {
		return nil, err
	}

	award, settle, err := s.xp.Stage(ctx, in.UserID, models.XPForTip, models.XPReasonTip, "tip", 0)
	if err != nil {
		return nil, err
	}

	tip := &models.Tip{
		UserID:   in.UserID,
		GameID:   in.GameID,
		Title:    in.Title,
		Body:     in.Body,
		Category: in.Category,
	}
	if err := s.tipRepo.Create(ctx, tip, award); err != nil {
		return nil, err
	}
	settle(ctx)

	s.sweepAchievements(ctx, in.UserID)
	return tip, nil
}

func (s *ContentService) GetTips(ctx context.Context, gameID uint, category string, limit, offset int) ([]*models.Tip, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.tipRepo.ListByGame(ctx, gameID, category, limit, offset)
}

// DeleteTip removes a tip. Author or moderator.
func (s *ContentService) DeleteTip(ctx context.Context, userID, tipID uint) error {
	tip, err := s.tipRepo.GetByID(ctx, tipID)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrModerator(ctx, userID, tip.UserID); err != nil {
		return err
	}
	return s.tipRepo.Delete(ctx, tipID)
}

// CreateWikiEntry starts a new wiki page for a game.
func (s *ContentService) CreateWikiEntry(ctx context.Context, in WikiEntryInput) (*models.WikiEntry, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Title and body are required")
	}
	if err := s.requireContributor(ctx, in.UserID, in.GameID); err != nil {
		return nil, err
	}
	slug := Slugify(in.Title)
	if slug == "" {
		return nil, models.NewValidationError("Title must contain letters or digits")
	}

	award, settle, err := s.xp.Stage(ctx, in.UserID, models.XPForWikiEdit, models.XPReasonWikiEdit, "wiki", 0)
	if err != nil {
		return nil, err
	}

	entry := &models.WikiEntry{
		UserID:  in.UserID,
		GameID:  in.GameID,
		Title:   in.Title,
		Slug:    slug,
		Body:    in.Body,
		Version: 1,
	}
	if err := s.wikiRepo.Create(ctx, entry, award); err != nil {
		return nil, err
	}
	settle(ctx)

	s.sweepAchievements(ctx, in.UserID)
	return entry, nil
}

// EditWikiEntry revises an existing page. Any contributor may edit; the
// version check turns a lost race into a conflict the client can retry.
// An accepted edit earns the editor wiki XP like a fresh page does.
func (s *ContentService) EditWikiEntry(ctx context.Context, gameID uint, slug string, in WikiEntryInput) (*models.WikiEntry, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Title and body are required")
	}
	if err := s.requireContributor(ctx, in.UserID, gameID); err != nil {
		return nil, err
	}

	entry, err := s.wikiRepo.GetBySlug(ctx, gameID, slug)
	if err != nil {
		return nil, err
	}

	award, settle, err := s.xp.Stage(ctx, in.UserID, models.XPForWikiEdit, models.XPReasonWikiEdit, "wiki", entry.ID)
	if err != nil {
		return nil, err
	}
	if err := s.wikiRepo.UpdateBody(ctx, entry, in.Title, in.Body, in.UserID, award); err != nil {
		return nil, err
	}
	settle(ctx)

	s.sweepAchievements(ctx, in.UserID)
	return entry, nil
}

func (s *ContentService) GetWikiEntry(ctx context.Context, gameID uint, slug string) (*models.WikiEntry, error) {
	return s.wikiRepo.GetBySlug(ctx, gameID, slug)
}

func (s *ContentService) ListWikiEntries(ctx context.Context, gameID uint, limit, offset int) ([]*models.WikiEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.wikiRepo.ListByGame(ctx, gameID, limit, offset)
}

// DeleteWikiEntry removes a page. Moderator only; wiki pages are communal
// so authorship does not grant deletion.
func (s *ContentService) DeleteWikiEntry(ctx context.Context, userID, entryID uint) error {
	actor, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !actor.Role.CanModerate() {
		return models.NewForbiddenError("Moderator role required")
	}
	return s.wikiRepo.Delete(ctx, entryID)
}

func (s *ContentService) requireOwnerOrModerator(ctx context.Context, actorID, ownerID uint) error {
	if actorID == ownerID {
		return nil
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.Role.CanModerate() {
		return models.NewForbiddenError("You can only modify your own content")
	}
	return nil
}
