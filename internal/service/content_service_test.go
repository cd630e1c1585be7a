package service

import (
	"context"
	"testing"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reviewRepoStub is a stub for repository.ReviewRepository.
type reviewRepoStub struct {
	createFn     func(context.Context, *models.Review, *repository.XPAward) error
	getByIDFn    func(context.Context, uint) (*models.Review, error)
	listByGameFn func(context.Context, uint, int, int) ([]*models.Review, error)
	updateFn     func(context.Context, *models.Review) error
	deleteFn     func(context.Context, uint) error
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review, award *repository.XPAward) error {
	return s.createFn(ctx, review, award)
}
func (s *reviewRepoStub) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reviewRepoStub) ListByGame(ctx context.Context, gameID uint, limit, offset int) ([]*models.Review, error) {
	return s.listByGameFn(ctx, gameID, limit, offset)
}
func (s *reviewRepoStub) Update(ctx context.Context, review *models.Review) error {
	return s.updateFn(ctx, review)
}
func (s *reviewRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		createFn:     func(_ context.Context, _ *models.Review, _ *repository.XPAward) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Review, error) { return &models.Review{ID: id, UserID: 1}, nil },
		listByGameFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Review, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Review) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// tipRepoStub is a stub for repository.TipRepository.
type tipRepoStub struct {
	createFn     func(context.Context, *models.Tip, *repository.XPAward) error
	getByIDFn    func(context.Context, uint) (*models.Tip, error)
	listByGameFn func(context.Context, uint, string, int, int) ([]*models.Tip, error)
	updateFn     func(context.Context, *models.Tip) error
	deleteFn     func(context.Context, uint) error
}

func (s *tipRepoStub) Create(ctx context.Context, tip *models.Tip, award *repository.XPAward) error {
	return s.createFn(ctx, tip, award)
}
func (s *tipRepoStub) GetByID(ctx context.Context, id uint) (*models.Tip, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tipRepoStub) ListByGame(ctx context.Context, gameID uint, category string, limit, offset int) ([]*models.Tip, error) {
	return s.listByGameFn(ctx, gameID, category, limit, offset)
}
func (s *tipRepoStub) Update(ctx context.Context, tip *models.Tip) error { return s.updateFn(ctx, tip) }
func (s *tipRepoStub) Delete(ctx context.Context, id uint) error        { return s.deleteFn(ctx, id) }

func noopTipRepo() *tipRepoStub {
	return &tipRepoStub{
		createFn:     func(_ context.Context, _ *models.Tip, _ *repository.XPAward) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Tip, error) { return &models.Tip{ID: id, UserID: 1}, nil },
		listByGameFn: func(_ context.Context, _ uint, _ string, _, _ int) ([]*models.Tip, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Tip) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// wikiRepoStub is a stub for repository.WikiRepository.
type wikiRepoStub struct {
	createFn     func(context.Context, *models.WikiEntry, *repository.XPAward) error
	getBySlugFn  func(context.Context, uint, string) (*models.WikiEntry, error)
	listByGameFn func(context.Context, uint, int, int) ([]*models.WikiEntry, error)
	updateBodyFn func(context.Context, *models.WikiEntry, string, string, uint, *repository.XPAward) error
	deleteFn     func(context.Context, uint) error
}

func (s *wikiRepoStub) Create(ctx context.Context, entry *models.WikiEntry, award *repository.XPAward) error {
	return s.createFn(ctx, entry, award)
}
func (s *wikiRepoStub) GetBySlug(ctx context.Context, gameID uint, slug string) (*models.WikiEntry, error) {
	return s.getBySlugFn(ctx, gameID, slug)
}
func (s *wikiRepoStub) ListByGame(ctx context.Context, gameID uint, limit, offset int) ([]*models.WikiEntry, error) {
	return s.listByGameFn(ctx, gameID, limit, offset)
}
func (s *wikiRepoStub) UpdateBody(ctx context.Context, entry *models.WikiEntry, title, body string, editorID uint, award *repository.XPAward) error {
	return s.updateBodyFn(ctx, entry, title, body, editorID, award)
}
func (s *wikiRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopWikiRepo() *wikiRepoStub {
	return &wikiRepoStub{
		createFn: func(_ context.Context, _ *models.WikiEntry, _ *repository.XPAward) error { return nil },
		getBySlugFn: func(_ context.Context, gameID uint, slug string) (*models.WikiEntry, error) {
			return &models.WikiEntry{ID: 1, GameID: gameID, Slug: slug, Version: 1}, nil
		},
		listByGameFn: func(_ context.Context, _ uint, _, _ int) ([]*models.WikiEntry, error) { return nil, nil },
		updateBodyFn: func(_ context.Context, entry *models.WikiEntry, title, body string, editorID uint, _ *repository.XPAward) error {
			entry.Title = title
			entry.Body = body
			entry.UserID = editorID
			entry.Version++
			return nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func newContentService(reviewRepo *reviewRepoStub, tipRepo *tipRepoStub, wikiRepo *wikiRepoStub, userRepo *userRepoStub) *ContentService {
	xp := NewXPService(userRepo, nil)
	achievements := NewAchievementService(noopAchievementRepo(), userRepo, nil)
	return NewContentService(reviewRepo, tipRepo, wikiRepo, noopGameRepo(), userRepo, xp, achievements)
}

func TestContentService_CreateReview(t *testing.T) {
	t.Parallel()

	t.Run("Stages Review XP With Insert", func(t *testing.T) {
		t.Parallel()
		reviewRepo := noopReviewRepo()
		var staged *repository.XPAward
		reviewRepo.createFn = func(_ context.Context, _ *models.Review, award *repository.XPAward) error {
			staged = award
			return nil
		}

		svc := newContentService(reviewRepo, noopTipRepo(), noopWikiRepo(), noopUserRepo())
		review, err := svc.CreateReview(context.Background(), CreateReviewInput{
			UserID: 1, GameID: 2, Title: "Solid", Body: "Held up on replay.", Rating: 4,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
		require.NotNil(t, staged)
		assert.Equal(t, models.XPForReview, staged.Amount)
		assert.Equal(t, models.XPReasonReview, staged.Reason)
		assert.Equal(t, uint(1), staged.UserID)
	})

	t.Run("Failed Award Fails The Create", func(t *testing.T) {
		t.Parallel()
		reviewRepo := noopReviewRepo()
		reviewRepo.createFn = func(_ context.Context, _ *models.Review, _ *repository.XPAward) error {
			return models.NewNotFoundError("User", 1)
		}

		svc := newContentService(reviewRepo, noopTipRepo(), noopWikiRepo(), noopUserRepo())
		_, err := svc.CreateReview(context.Background(), CreateReviewInput{
			UserID: 1, GameID: 2, Title: "t", Body: "b", Rating: 3,
		})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("Rating Bounds", func(t *testing.T) {
		t.Parallel()
		svc := newContentService(noopReviewRepo(), noopTipRepo(), noopWikiRepo(), noopUserRepo())
		for _, rating := range []int{0, 6, -1} {
			_, err := svc.CreateReview(context.Background(), CreateReviewInput{
				UserID: 1, GameID: 2, Title: "t", Body: "b", Rating: rating,
			})
			require.Error(t, err)
		}
	})

	t.Run("Duplicate Review Conflicts", func(t *testing.T) {
		t.Parallel()
		reviewRepo := noopReviewRepo()
		reviewRepo.createFn = func(_ context.Context, _ *models.Review, _ *repository.XPAward) error {
			return models.NewConflictError("you have already reviewed this game")
		}

		svc := newContentService(reviewRepo, noopTipRepo(), noopWikiRepo(), noopUserRepo())
		_, err := svc.CreateReview(context.Background(), CreateReviewInput{
			UserID: 1, GameID: 2, Title: "t", Body: "b", Rating: 3,
		})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

func TestContentService_CreateTip(t *testing.T) {
	t.Parallel()
	tipRepo := noopTipRepo()
	var staged *repository.XPAward
	tipRepo.createFn = func(_ context.Context, _ *models.Tip, award *repository.XPAward) error {
		staged = award
		return nil
	}

	svc := newContentService(noopReviewRepo(), tipRepo, noopWikiRepo(), noopUserRepo())
	tip, err := svc.CreateTip(context.Background(), CreateTipInput{
		UserID: 1, GameID: 2, Title: "Parry timing", Body: "Wait for the flash.", Category: "combat",
	})
	require.NoError(t, err)
	assert.Equal(t, "combat", tip.Category)
	require.NotNil(t, staged)
	assert.Equal(t, models.XPForTip, staged.Amount)
	assert.Equal(t, models.XPReasonTip, staged.Reason)
}

func TestContentService_Wiki(t *testing.T) {
	t.Parallel()

	t.Run("Create Sets Slug And Version", func(t *testing.T) {
		t.Parallel()
		wikiRepo := noopWikiRepo()
		var created *models.WikiEntry
		wikiRepo.createFn = func(_ context.Context, e *models.WikiEntry, _ *repository.XPAward) error {
			created = e
			return nil
		}

		svc := newContentService(noopReviewRepo(), noopTipRepo(), wikiRepo, noopUserRepo())
		entry, err := svc.CreateWikiEntry(context.Background(), WikiEntryInput{
			UserID: 1, GameID: 2, Title: "Boss Guide: Act 2", Body: "Details.",
		})
		require.NoError(t, err)
		assert.Equal(t, "boss-guide-act-2", entry.Slug)
		assert.Equal(t, 1, entry.Version)
		require.NotNil(t, created)
	})

	t.Run("Edit Bumps Version And Stages XP", func(t *testing.T) {
		t.Parallel()
		wikiRepo := noopWikiRepo()
		var staged *repository.XPAward
		base := wikiRepo.updateBodyFn
		wikiRepo.updateBodyFn = func(ctx context.Context, entry *models.WikiEntry, title, body string, editorID uint, award *repository.XPAward) error {
			staged = award
			return base(ctx, entry, title, body, editorID, award)
		}

		svc := newContentService(noopReviewRepo(), noopTipRepo(), wikiRepo, noopUserRepo())
		entry, err := svc.EditWikiEntry(context.Background(), 2, "boss-guide", WikiEntryInput{
			UserID: 3, Title: "Boss Guide", Body: "Updated details.",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, entry.Version)
		assert.Equal(t, uint(3), entry.UserID)
		require.NotNil(t, staged)
		assert.Equal(t, models.XPForWikiEdit, staged.Amount)
		assert.Equal(t, models.XPReasonWikiEdit, staged.Reason)
		assert.Equal(t, uint(3), staged.UserID)
	})

	t.Run("Concurrent Edit Conflicts", func(t *testing.T) {
		t.Parallel()
		wikiRepo := noopWikiRepo()
		wikiRepo.updateBodyFn = func(_ context.Context, _ *models.WikiEntry, _, _ string, _ uint, _ *repository.XPAward) error {
			return models.NewConflictError("wiki entry was modified by another editor")
		}

		svc := newContentService(noopReviewRepo(), noopTipRepo(), wikiRepo, noopUserRepo())
		_, err := svc.EditWikiEntry(context.Background(), 2, "boss-guide", WikiEntryInput{
			UserID: 3, Title: "t", Body: "b",
		})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("Delete Is Moderator Only", func(t *testing.T) {
		t.Parallel()
		svc := newContentService(noopReviewRepo(), noopTipRepo(), noopWikiRepo(), noopUserRepo())
		err := svc.DeleteWikiEntry(context.Background(), 1, 4)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})
}
