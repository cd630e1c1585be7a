package server

import (
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetGames handles GET /api/games
func (s *Server) GetGames(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)

	games, err := s.gameService.ListGames(ctx, service.ListGamesInput{
		Genre:  c.Query("genre"),
		Search: c.Query("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(games)
}

// GetGame handles GET /api/games/:slug
func (s *Server) GetGame(c *fiber.Ctx) error {
	ctx := c.Context()
	slug := c.Params("slug")

	game, err := s.gameService.GetGame(ctx, slug)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(game)
}

// gameRequest is the create/update payload for catalog entries.
type gameRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Developer   string `json:"developer"`
	ReleaseYear int    `json:"release_year"`
	CoverURL    string `json:"cover_url"`
}

func (r gameRequest) toInput() service.GameInput {
	return service.GameInput{
		Title:       r.Title,
		Description: r.Description,
		Genre:       r.Genre,
		Developer:   r.Developer,
		ReleaseYear: r.ReleaseYear,
		CoverURL:    r.CoverURL,
	}
}

// CreateGame handles POST /api/admin/games (admin only)
func (s *Server) CreateGame(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req gameRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	game, err := s.gameService.CreateGame(ctx, userID, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

// UpdateGame handles PUT /api/admin/games/:id (admin only)
func (s *Server) UpdateGame(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req gameRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	game, err := s.gameService.UpdateGame(ctx, userID, gameID, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(game)
}

// DeleteGame handles DELETE /api/admin/games/:id (admin only)
func (s *Server) DeleteGame(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.gameService.DeleteGame(ctx, userID, gameID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
