package handlers

import (
	"airsoft-manager-backend/internal/middleware"
	"airsoft-manager-backend/internal/services"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UpdateRulesRequest struct {
	Security              *string `json:"security"`
	PowerDistances        *string `json:"power_distances"`
	PowerDistancesIndoor  *string `json:"power_distances_indoor"`
	PowerDistancesOutdoor *string `json:"power_distances_outdoor"`
	FairPlay              *string `json:"fair_play"`
	ShootingRules         *string `json:"shooting_rules"`
	Pyrotechnics          *string `json:"pyrotechnics"`
	TerrainRespect        *string `json:"terrain_respect"`
	SafetyStop            *string `json:"safety_stop"`
	FormalBans            *string `json:"formal_bans"`
	ImportantInfo         *string `json:"important_info"`
}

type CreateRuleVersionRequest struct {
	VersionName string `json:"version_name" validate:"required,min=1,max=100"`
}

// GetRules returns the current field rules document
// @Summary Get rules
// @Tags Rules
// @Produce json
// @Success 200 {object} utils.Response
// @Router /rules [get]
func (h *Handler) GetRules(c *fiber.Ctx) error {
	rules, err := h.rulesSvc.GetRules()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, rules, "Rules retrieved successfully")
}

// UpdateRules edits sections of the rules document
// @Summary Update rules
// @Tags Rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateRulesRequest true "Sections to update"
// @Success 200 {object} utils.Response
// @Router /rules [put]
func (h *Handler) UpdateRules(c *fiber.Ctx) error {
	var req UpdateRulesRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	rules, err := h.rulesSvc.UpdateRules(services.UpdateRulesRequest{
		Security:              req.Security,
		PowerDistances:        req.PowerDistances,
		PowerDistancesIndoor:  req.PowerDistancesIndoor,
		PowerDistancesOutdoor: req.PowerDistancesOutdoor,
		FairPlay:              req.FairPlay,
		ShootingRules:         req.ShootingRules,
		Pyrotechnics:          req.Pyrotechnics,
		TerrainRespect:        req.TerrainRespect,
		SafetyStop:            req.SafetyStop,
		FormalBans:            req.FormalBans,
		ImportantInfo:         req.ImportantInfo,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, rules, "Rules updated successfully")
}

// ListRuleVersions returns the retained snapshots, newest first
// @Summary List rule versions
// @Tags Rules
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /rule-versions [get]
func (h *Handler) ListRuleVersions(c *fiber.Ctx) error {
	versions, err := h.rulesSvc.ListVersions()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, versions, "Rule versions retrieved successfully")
}

// CreateRuleVersion snapshots the current rules under a name
// @Summary Create rule version
// @Tags Rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRuleVersionRequest true "Version name"
// @Success 201 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /rule-versions [post]
func (h *Handler) CreateRuleVersion(c *fiber.Ctx) error {
	var req CreateRuleVersionRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	version, err := h.rulesSvc.CreateVersion(req.VersionName)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, version, "Rule version created successfully", fiber.StatusCreated)
}

// ApplyRuleVersion restores a snapshot as the current rules
// @Summary Apply rule version
// @Tags Rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Version ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /rule-versions/{id}/apply [post]
func (h *Handler) ApplyRuleVersion(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid version ID", fiber.StatusBadRequest)
	}

	version, err := h.rulesSvc.ApplyVersion(id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, version, "Rule version applied successfully")
}

// DeleteRuleVersion removes a snapshot, freeing a retention slot
// @Summary Delete rule version
// @Tags Rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Version ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /rule-versions/{id} [delete]
func (h *Handler) DeleteRuleVersion(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid version ID", fiber.StatusBadRequest)
	}

	if err := h.rulesSvc.DeleteVersion(id); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Rule version deleted successfully")
}
