package handlers

import (
	"strconv"

	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStatistics returns aggregate figures over the most recent games
// @Summary Get statistics
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param last_games query int false "Number of recent games" default(10)
// @Success 200 {object} utils.Response
// @Router /statistics [get]
func (h *Handler) GetStatistics(c *fiber.Ctx) error {
	lastGames, _ := strconv.Atoi(c.Query("last_games", "10"))

	stats, err := h.statsSvc.GetStatistics(lastGames)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, stats, "Statistics retrieved successfully")
}

// GetStatisticsByGame returns per-game breakdowns
// @Summary Get per-game statistics
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of recent games" default(10)
// @Success 200 {object} utils.Response
// @Router /statistics/by-game [get]
func (h *Handler) GetStatisticsByGame(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	stats, err := h.statsSvc.GetStatisticsByGame(limit)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, stats, "Statistics retrieved successfully")
}
