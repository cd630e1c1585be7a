package server

import (
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetModerationQueue handles GET /api/moderation/queue. The service
// rejects callers without moderator privileges.
func (s *Server) GetModerationQueue(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	posts, err := s.moderationService.ListPending(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(posts)
}

// ApprovePost handles POST /api/moderation/posts/:id/approve
func (s *Server) ApprovePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.moderationService.ModeratePost(ctx, service.ModerateInput{
		ModeratorID: userID,
		PostID:      postID,
		Approve:     true,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(post)
}

// DeclinePost handles POST /api/moderation/posts/:id/decline
func (s *Server) DeclinePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.moderationService.ModeratePost(ctx, service.ModerateInput{
		ModeratorID: userID,
		PostID:      postID,
		Approve:     false,
		Reason:      req.Reason,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(post)
}

// BanUser handles POST /api/users/:id/ban (admin only)
func (s *Server) BanUser(c *fiber.Ctx) error {
	return s.setBanned(c, true)
}

// UnbanUser handles POST /api/users/:id/unban (admin only)
func (s *Server) UnbanUser(c *fiber.Ctx) error {
	return s.setBanned(c, false)
}

func (s *Server) setBanned(c *fiber.Ctx, banned bool) error {
	ctx := c.Context()
	adminID := c.Locals("userID").(uint)
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.moderationService.SetBanned(ctx, adminID, userID, banned)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}

// MuteUser handles POST /api/users/:id/mute. A zero or negative duration
// clears an existing mute.
func (s *Server) MuteUser(c *fiber.Ctx) error {
	ctx := c.Context()
	moderatorID := c.Locals("userID").(uint)
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Minutes int `json:"minutes"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.moderationService.MuteUser(ctx, moderatorID, userID,
		time.Duration(req.Minutes)*time.Minute)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}

// SetUserRole handles PUT /api/users/:id/role (admin only)
func (s *Server) SetUserRole(c *fiber.Ctx) error {
	ctx := c.Context()
	adminID := c.Locals("userID").(uint)
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.moderationService.SetRole(ctx, adminID, userID, models.Role(req.Role))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}
