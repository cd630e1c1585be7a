package server

import (
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetGameReviews handles GET /api/games/:id/reviews
func (s *Server) GetGameReviews(c *fiber.Ctx) error {
	ctx := c.Context()
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	reviews, err := s.contentService.GetReviews(ctx, gameID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(reviews)
}

// CreateReview handles POST /api/games/:id/reviews
func (s *Server) CreateReview(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title  string `json:"title"`
		Body   string `json:"body"`
		Rating int    `json:"rating"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.contentService.CreateReview(ctx, service.CreateReviewInput{
		UserID: userID,
		GameID: gameID,
		Title:  req.Title,
		Body:   req.Body,
		Rating: req.Rating,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// DeleteReview handles DELETE /api/reviews/:id
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteReview(ctx, userID, reviewID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetGameTips handles GET /api/games/:id/tips
func (s *Server) GetGameTips(c *fiber.Ctx) error {
	ctx := c.Context()
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	tips, err := s.contentService.GetTips(ctx, gameID, c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(tips)
}

// CreateTip handles POST /api/games/:id/tips
func (s *Server) CreateTip(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		Category string `json:"category"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tip, err := s.contentService.CreateTip(ctx, service.CreateTipInput{
		UserID:   userID,
		GameID:   gameID,
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(tip)
}

// DeleteTip handles DELETE /api/tips/:id
func (s *Server) DeleteTip(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	tipID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteTip(ctx, userID, tipID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetGameWikiEntries handles GET /api/games/:id/wiki
func (s *Server) GetGameWikiEntries(c *fiber.Ctx) error {
	ctx := c.Context()
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)

	entries, err := s.contentService.ListWikiEntries(ctx, gameID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(entries)
}

// GetGameWikiEntry handles GET /api/games/:id/wiki/:slug
func (s *Server) GetGameWikiEntry(c *fiber.Ctx) error {
	ctx := c.Context()
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	entry, err := s.contentService.GetWikiEntry(ctx, gameID, c.Params("slug"))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(entry)
}

// CreateWikiEntry handles POST /api/games/:id/wiki
func (s *Server) CreateWikiEntry(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.contentService.CreateWikiEntry(ctx, service.WikiEntryInput{
		UserID: userID,
		GameID: gameID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateWikiEntry handles PUT /api/games/:id/wiki/:slug
func (s *Server) UpdateWikiEntry(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	gameID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.contentService.EditWikiEntry(ctx, gameID, c.Params("slug"), service.WikiEntryInput{
		UserID: userID,
		GameID: gameID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(entry)
}

// DeleteWikiEntry handles DELETE /api/wiki/:id
func (s *Server) DeleteWikiEntry(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	entryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteWikiEntry(ctx, userID, entryID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
