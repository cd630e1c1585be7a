package server

import (
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikeTarget handles POST /api/likes/:targetType/:targetId
func (s *Server) LikeTarget(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	target, err := s.parseTarget(c)
	if err != nil {
		return nil
	}

	if err := s.engagementService.Like(ctx, userID, target); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Liked"})
}

// UnlikeTarget handles DELETE /api/likes/:targetType/:targetId
func (s *Server) UnlikeTarget(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	target, err := s.parseTarget(c)
	if err != nil {
		return nil
	}

	if err := s.engagementService.Unlike(ctx, userID, target); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetLikeStatus handles GET /api/likes/:targetType/:targetId
func (s *Server) GetLikeStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	target, err := s.parseTarget(c)
	if err != nil {
		return nil
	}

	liked, err := s.engagementService.IsLiked(ctx, userID, target)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	count, err := s.engagementService.Count(ctx, target)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"liked": liked,
		"count": count,
	})
}
