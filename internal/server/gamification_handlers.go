package server

import (
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAchievementCatalog handles GET /api/achievements. Secret achievements
// are omitted until unlocked.
func (s *Server) GetAchievementCatalog(c *fiber.Ctx) error {
	ctx := c.Context()

	defs, err := s.achievementService.ListDefinitions(ctx, false)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(defs)
}

// GetMyAchievements handles GET /api/users/me/achievements
func (s *Server) GetMyAchievements(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	unlocked, err := s.achievementService.GetUserAchievements(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(unlocked)
}

// GetUserAchievements handles GET /api/users/:id/achievements
func (s *Server) GetUserAchievements(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	unlocked, err := s.achievementService.GetUserAchievements(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(unlocked)
}

// GetMyAchievementProgress handles GET /api/users/me/progress
func (s *Server) GetMyAchievementProgress(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	progress, err := s.achievementService.GetProgress(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(progress)
}

// GetLeaderboard handles GET /api/leaderboard?period=weekly|monthly|all_time
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 25)

	entries, err := s.leaderboardService.GetTop(ctx, c.Query("period"), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(entries)
}

// GetMyRank handles GET /api/leaderboard/me
func (s *Server) GetMyRank(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	rank, err := s.leaderboardService.GetUserRank(ctx, userID, c.Query("period"))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	if rank == nil {
		return c.JSON(fiber.Map{"ranked": false})
	}

	return c.JSON(rank)
}
