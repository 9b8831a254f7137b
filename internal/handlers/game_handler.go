package handlers

import (
	"strconv"
	"time"

	"airsoft-manager-backend/internal/middleware"
	"airsoft-manager-backend/internal/services"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateGameRequest struct {
	Date        string `json:"date" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CreateGame creates a new game day
// @Summary Create game
// @Tags Games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGameRequest true "Game data"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /games [post]
func (h *Handler) CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.Error(c, "Invalid date, expected YYYY-MM-DD", fiber.StatusBadRequest)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	game, err := h.gameSvc.CreateGame(services.CreateGameRequest{
		Date:        date,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, game, "Game created successfully", fiber.StatusCreated)
}

// ListGames returns games ordered by date, newest first
// @Summary List games
// @Tags Games
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.Response
// @Router /games [get]
func (h *Handler) ListGames(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	games, err := h.gameSvc.ListGames((page-1)*pageSize, pageSize)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, games, "Games retrieved successfully")
}

// GetGame returns a single game
// @Summary Get game
// @Tags Games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /games/{id} [get]
func (h *Handler) GetGame(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid game ID", fiber.StatusBadRequest)
	}

	game, err := h.gameSvc.GetGame(id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, game, "Game retrieved successfully")
}

// GetActiveGame returns the game currently open for registration, or null
// @Summary Get active game
// @Tags Games
// @Produce json
// @Success 200 {object} utils.Response
// @Router /games/active [get]
func (h *Handler) GetActiveGame(c *fiber.Ctx) error {
	game, err := h.gameSvc.GetActiveGame()
	if err != nil {
		return serviceError(c, err)
	}
	if game == nil {
		return utils.Success(c, nil, "No active game")
	}

	return utils.Success(c, game, "Active game retrieved successfully")
}

// ToggleCloseGame flips the registrations-closed flag
// @Summary Toggle game closed
// @Tags Games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /games/{id}/toggle-close [patch]
func (h *Handler) ToggleCloseGame(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid game ID", fiber.StatusBadRequest)
	}

	game, err := h.gameSvc.ToggleClose(id)
	if err != nil {
		return serviceError(c, err)
	}

	message := "Registrations reopened"
	if game.IsClosed {
		message = "Registrations closed"
	}
	return utils.Success(c, game, message)
}

// SendGameReminders re-sends reminder emails for one game on demand
// @Summary Send reminders for a game
// @Tags Games
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /games/{id}/send-reminders [post]
func (h *Handler) SendGameReminders(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid game ID", fiber.StatusBadRequest)
	}

	sent, err := h.reminderSvc.SendGameReminders(id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.Map{"sent": sent}, "Reminders sent")
}

// SendAutomaticReminders runs the daily reminder pass immediately
// @Summary Trigger automatic reminders
// @Tags Games
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /send-automatic-reminders [post]
func (h *Handler) SendAutomaticReminders(c *fiber.Ctx) error {
	if err := h.reminderSvc.SendDueReminders(); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Automatic reminders processed")
}
