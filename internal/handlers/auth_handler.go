package handlers

import (
	"airsoft-manager-backend/internal/middleware"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// Login authenticates the admin and returns a bearer token
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	result, err := h.authSvc.Authenticate(req.Username, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, result, "Login successful")
}

// ChangePassword updates the admin password
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /admin/change-password [put]
func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	username, err := middleware.GetAdminUsername(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	if err := h.authSvc.ChangePassword(username, req.CurrentPassword, req.NewPassword); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Password updated successfully")
}
