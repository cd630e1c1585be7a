package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gameRepoStub is a stub for repository.GameRepository.
type gameRepoStub struct {
	createFn    func(context.Context, *models.Game) error
	getByIDFn   func(context.Context, uint) (*models.Game, error)
	getBySlugFn func(context.Context, string) (*models.Game, error)
	listFn      func(context.Context, string, string, int, int) ([]*models.Game, error)
	updateFn    func(context.Context, *models.Game) error
	deleteFn    func(context.Context, uint) error
}

func (s *gameRepoStub) Create(ctx context.Context, game *models.Game) error {
	return s.createFn(ctx, game)
}
func (s *gameRepoStub) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	return s.getByIDFn(ctx, id)
}
func (s *gameRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *gameRepoStub) List(ctx context.Context, genre, search string, limit, offset int) ([]*models.Game, error) {
	return s.listFn(ctx, genre, search, limit, offset)
}
func (s *gameRepoStub) Update(ctx context.Context, game *models.Game) error {
	return s.updateFn(ctx, game)
}
func (s *gameRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopGameRepo() *gameRepoStub {
	return &gameRepoStub{
		createFn:    func(_ context.Context, _ *models.Game) error { return nil },
		getByIDFn:   func(_ context.Context, id uint) (*models.Game, error) { return &models.Game{ID: id}, nil },
		getBySlugFn: func(_ context.Context, slug string) (*models.Game, error) { return &models.Game{Slug: slug}, nil },
		listFn:      func(_ context.Context, _, _ string, _, _ int) ([]*models.Game, error) { return nil, nil },
		updateFn:    func(_ context.Context, _ *models.Game) error { return nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()

	t.Run("Starts Pending", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		var created *models.Post
		postRepo.createFn = func(_ context.Context, p *models.Post) error {
			created = p
			return nil
		}

		svc := NewPostService(postRepo, noopUserRepo(), noopGameRepo())
		post, err := svc.CreatePost(context.Background(), CreatePostInput{
			UserID:  1,
			Title:   "Boss strategies",
			Content: "Bring fire resistance.",
		})
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusPending, post.Status)
		require.NotNil(t, created)
		assert.Equal(t, models.PostStatusPending, created.Status)
	})

	t.Run("Validation", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo(), noopGameRepo())

		tests := []struct {
			name    string
			title   string
			content string
		}{
			{"Missing Title", "", "content"},
			{"Missing Content", "title", ""},
			{"Title Too Long", strings.Repeat("x", 301), "content"},
			{"Content Too Long", "title", strings.Repeat("x", 50001)},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Title: tt.title, Content: tt.content})
				require.Error(t, err)
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			})
		}
	})

	t.Run("Banned User Cannot Post", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleUser, IsBanned: true}, nil
		}

		svc := NewPostService(noopPostRepo(), userRepo, noopGameRepo())
		_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Title: "t", Content: "c"})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("Muted User Cannot Post", func(t *testing.T) {
		t.Parallel()
		until := time.Now().Add(time.Hour)
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleUser, MutedUntil: &until}, nil
		}

		svc := NewPostService(noopPostRepo(), userRepo, noopGameRepo())
		_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Title: "t", Content: "c"})
		require.Error(t, err)
	})

	t.Run("Unknown Game Rejected", func(t *testing.T) {
		t.Parallel()
		gameRepo := noopGameRepo()
		gameRepo.getByIDFn = func(_ context.Context, id uint) (*models.Game, error) {
			return nil, models.NewNotFoundError("Game", id)
		}

		gameID := uint(7)
		svc := NewPostService(noopPostRepo(), noopUserRepo(), gameRepo)
		_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Title: "t", Content: "c", GameID: &gameID})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestPostService_GetPost_Visibility(t *testing.T) {
	t.Parallel()

	pendingPost := func(_ context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2, Status: models.PostStatusPending}, nil
	}

	t.Run("Author Sees Pending", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = pendingPost

		svc := NewPostService(postRepo, noopUserRepo(), noopGameRepo())
		post, err := svc.GetPost(context.Background(), 5, 2)
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusPending, post.Status)
	})

	t.Run("Stranger Gets Not Found", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = pendingPost

		svc := NewPostService(postRepo, noopUserRepo(), noopGameRepo())
		_, err := svc.GetPost(context.Background(), 5, 3)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("Moderator Sees Pending", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = pendingPost
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleModerator}, nil
		}

		svc := NewPostService(postRepo, userRepo, noopGameRepo())
		post, err := svc.GetPost(context.Background(), 5, 9)
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusPending, post.Status)
	})

	t.Run("Anonymous Gets Not Found", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = pendingPost

		svc := NewPostService(postRepo, noopUserRepo(), noopGameRepo())
		_, err := svc.GetPost(context.Background(), 5, 0)
		require.Error(t, err)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Parallel()

	t.Run("Editing Approved Resets To Pending", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, Status: models.PostStatusApproved}, nil
		}
		var saved *models.Post
		postRepo.updateFn = func(_ context.Context, p *models.Post) error {
			saved = p
			return nil
		}

		svc := NewPostService(postRepo, noopUserRepo(), noopGameRepo())
		post, err := svc.UpdatePost(context.Background(), UpdatePostInput{UserID: 1, PostID: 5, Title: "new", Content: "body"})
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusPending, post.Status)
		require.NotNil(t, saved)
		assert.Equal(t, models.PostStatusPending, saved.Status)
	})

	t.Run("Only Author May Edit", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 2, Status: models.PostStatusApproved}, nil
		}

		svc := NewPostService(postRepo, noopUserRepo(), noopGameRepo())
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{UserID: 1, PostID: 5, Title: "new", Content: "body"})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})
}

func TestSlugify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"Elden Ring", "elden-ring"},
		{"  NieR: Automata!  ", "nier-automata"},
		{"DOOM (2016)", "doom-2016"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}
