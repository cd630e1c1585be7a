package service

import (
	"context"
	"testing"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminUserRepo() *userRepoStub {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		if id == 9 {
			return &models.User{ID: id, Username: "admin", Role: models.RoleAdmin}, nil
		}
		return &models.User{ID: id, Username: "regular", Role: models.RoleUser}, nil
	}
	return repo
}

func TestGameService_CreateGame(t *testing.T) {
	t.Parallel()

	t.Run("Admin Creates Game With Generated Slug", func(t *testing.T) {
		t.Parallel()
		gameRepo := noopGameRepo()
		var created *models.Game
		gameRepo.createFn = func(_ context.Context, game *models.Game) error {
			created = game
			return nil
		}

		svc := NewGameService(gameRepo, adminUserRepo())
		game, err := svc.CreateGame(context.Background(), 9, GameInput{
			Title:       "NieR: Automata",
			Genre:       "action-rpg",
			ReleaseYear: 2017,
		})
		require.NoError(t, err)
		assert.Equal(t, "nier-automata", game.Slug)
		assert.Same(t, created, game)
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		t.Parallel()
		svc := NewGameService(noopGameRepo(), adminUserRepo())
		_, err := svc.CreateGame(context.Background(), 2, GameInput{Title: "Hades"})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("Validation", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			name string
			in   GameInput
		}{
			{"Missing Title", GameInput{}},
			{"Release Year Too Early", GameInput{Title: "Pong", ReleaseYear: 1949}},
			{"Title Without Slug Material", GameInput{Title: "---"}},
			{"Reserved Slug", GameInput{Title: "Admin"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				svc := NewGameService(noopGameRepo(), adminUserRepo())
				_, err := svc.CreateGame(context.Background(), 9, tc.in)
				require.Error(t, err)
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			})
		}
	})

	t.Run("Duplicate Title Conflicts", func(t *testing.T) {
		t.Parallel()
		gameRepo := noopGameRepo()
		gameRepo.createFn = func(_ context.Context, _ *models.Game) error {
			return models.NewConflictError("a game with this title already exists")
		}

		svc := NewGameService(gameRepo, adminUserRepo())
		_, err := svc.CreateGame(context.Background(), 9, GameInput{Title: "Hades"})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

func TestGameService_UpdateGame(t *testing.T) {
	t.Parallel()

	t.Run("Retitling Regenerates Slug", func(t *testing.T) {
		t.Parallel()
		gameRepo := noopGameRepo()
		gameRepo.getByIDFn = func(_ context.Context, id uint) (*models.Game, error) {
			return &models.Game{ID: id, Title: "Hades", Slug: "hades"}, nil
		}

		svc := NewGameService(gameRepo, adminUserRepo())
		game, err := svc.UpdateGame(context.Background(), 9, 1, GameInput{Title: "Hades II"})
		require.NoError(t, err)
		assert.Equal(t, "hades-ii", game.Slug)
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		t.Parallel()
		svc := NewGameService(noopGameRepo(), adminUserRepo())
		_, err := svc.UpdateGame(context.Background(), 2, 1, GameInput{Title: "Hades"})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})
}

func TestGameService_ListGames_ClampsLimit(t *testing.T) {
	t.Parallel()
	gameRepo := noopGameRepo()
	var gotLimit int
	gameRepo.listFn = func(_ context.Context, _, _ string, limit, _ int) ([]*models.Game, error) {
		gotLimit = limit
		return nil, nil
	}

	svc := NewGameService(gameRepo, adminUserRepo())
	_, err := svc.ListGames(context.Background(), ListGamesInput{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 25, gotLimit)
}
