package handlers

import (
	"os"
	"path/filepath"

	"airsoft-manager-backend/internal/middleware"
	"airsoft-manager-backend/internal/services"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const logoFilename = "logo.png"

// GetSiteSettings returns the public site settings
// @Summary Get site settings
// @Tags Settings
// @Produce json
// @Success 200 {object} utils.Response
// @Router /settings/site [get]
func (h *Handler) GetSiteSettings(c *fiber.Ctx) error {
	settings, err := h.settingsSvc.GetSiteSettings()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, settings, "Site settings retrieved successfully")
}

// UpdateSiteSettings updates the site title and theme color
// @Summary Update site settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.UpdateSiteSettingsRequest true "Fields to update"
// @Success 200 {object} utils.Response
// @Router /settings/site [put]
func (h *Handler) UpdateSiteSettings(c *fiber.Ctx) error {
	var req services.UpdateSiteSettingsRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	settings, err := h.settingsSvc.UpdateSiteSettings(req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, settings, "Site settings updated successfully")
}

// GetPricingSettings returns the fee tiers
// @Summary Get pricing settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /pricing-settings [get]
func (h *Handler) GetPricingSettings(c *fiber.Ctx) error {
	settings, err := h.settingsSvc.GetPricingSettings()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, settings, "Pricing settings retrieved successfully")
}

// UpdatePricingSettings updates the fee tiers
// @Summary Update pricing settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.UpdatePricingSettingsRequest true "Fields to update"
// @Success 200 {object} utils.Response
// @Router /pricing-settings [put]
func (h *Handler) UpdatePricingSettings(c *fiber.Ctx) error {
	var req services.UpdatePricingSettingsRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	settings, err := h.settingsSvc.UpdatePricingSettings(req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, settings, "Pricing settings updated successfully")
}

// UploadLogo replaces the site logo
// @Summary Upload logo
// @Tags Settings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /logo/upload [post]
func (h *Handler) UploadLogo(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.Error(c, "File is required", fiber.StatusBadRequest)
	}

	if file.Size > h.cfg.MaxUploadSize {
		return utils.Error(c, "File too large", fiber.StatusBadRequest)
	}

	if err := utils.ValidateImageFile(file); err != nil {
		return utils.Error(c, err.Error(), fiber.StatusBadRequest)
	}

	if err := utils.SaveUploadedFile(file, h.cfg.UploadDir, logoFilename); err != nil {
		return utils.Error(c, "Failed to save logo", fiber.StatusInternalServerError)
	}

	return utils.Success(c, fiber.Map{"path": "/logos/" + logoFilename}, "Logo uploaded successfully")
}

// GetLogo serves the current site logo
// @Summary Get logo
// @Tags Settings
// @Produce image/png
// @Success 200
// @Failure 404 {object} utils.Response
// @Router /logo [get]
func (h *Handler) GetLogo(c *fiber.Ctx) error {
	path := filepath.Join(h.cfg.UploadDir, logoFilename)
	if _, err := os.Stat(path); err != nil {
		return utils.Error(c, "No logo uploaded", fiber.StatusNotFound)
	}
	return c.SendFile(path)
}

// DeleteLogo removes the uploaded site logo
// @Summary Delete logo
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /logo [delete]
func (h *Handler) DeleteLogo(c *fiber.Ctx) error {
	path := filepath.Join(h.cfg.UploadDir, logoFilename)
	if _, err := os.Stat(path); err != nil {
		return utils.Error(c, "No logo uploaded", fiber.StatusNotFound)
	}

	if err := os.Remove(path); err != nil {
		return utils.Error(c, "Failed to delete logo", fiber.StatusInternalServerError)
	}

	return utils.Success(c, nil, "Logo deleted successfully")
}
