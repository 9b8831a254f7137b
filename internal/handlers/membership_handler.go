package handlers

import (
	"airsoft-manager-backend/internal/middleware"
	"airsoft-manager-backend/internal/services"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateMembershipApplicationRequest struct {
	FirstName         string `json:"first_name" validate:"required,min=1,max=100"`
	LastName          string `json:"last_name" validate:"required,min=1,max=100"`
	Address           string `json:"address" validate:"required,min=1,max=500"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,min=6,max=30"`
	HasPlayedBefore   bool   `json:"has_played_before"`
	AirsoftExperience string `json:"airsoft_experience" validate:"required,max=1000"`
	Motivation        string `json:"motivation" validate:"required,max=2000"`
}

type UpdateMembershipStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// CreateMembershipApplication submits a club membership application
// @Summary Apply for membership
// @Tags Membership
// @Accept json
// @Produce json
// @Param request body CreateMembershipApplicationRequest true "Application data"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /membership/applications [post]
func (h *Handler) CreateMembershipApplication(c *fiber.Ctx) error {
	var req CreateMembershipApplicationRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	app, err := h.membershipSvc.CreateApplication(services.CreateApplicationRequest{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Address:           req.Address,
		Email:             req.Email,
		Phone:             req.Phone,
		HasPlayedBefore:   req.HasPlayedBefore,
		AirsoftExperience: req.AirsoftExperience,
		Motivation:        req.Motivation,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, app, "Application submitted successfully", fiber.StatusCreated)
}

// ListMembershipApplications returns all applications
// @Summary List membership applications
// @Tags Membership
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /membership/applications [get]
func (h *Handler) ListMembershipApplications(c *fiber.Ctx) error {
	apps, err := h.membershipSvc.ListApplications()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, apps, "Applications retrieved successfully")
}

// CountPendingApplications returns the pending application count for the admin badge
// @Summary Count pending applications
// @Tags Membership
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /membership/applications/pending-count [get]
func (h *Handler) CountPendingApplications(c *fiber.Ctx) error {
	count, err := h.membershipSvc.CountPending()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.Map{"pending": count}, "Pending applications counted")
}

// UpdateMembershipStatus approves or rejects an application
// @Summary Update application status
// @Tags Membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body UpdateMembershipStatusRequest true "New status"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /membership/applications/{id}/status [put]
func (h *Handler) UpdateMembershipStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid application ID", fiber.StatusBadRequest)
	}

	var req UpdateMembershipStatusRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	app, err := h.membershipSvc.UpdateStatus(id, req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, app, "Application status updated successfully")
}
