package handlers

import (
	"airsoft-manager-backend/internal/middleware"
	"airsoft-manager-backend/internal/services"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateRegistrationRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=1,max=100"`
	LastName        string `json:"last_name" validate:"required,min=1,max=100"`
	Nickname        string `json:"nickname" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=6,max=30"`
	AttendanceType  string `json:"attendance_type" validate:"required,oneof=morning full_day invited"`
	HasAssociation  bool   `json:"has_association"`
	AssociationName string `json:"association_name" validate:"max=200"`
	BBWeightPistol  string `json:"bb_weight_pistol"`
	BBWeightRifle   string `json:"bb_weight_rifle"`
	HasSecondRifle  bool   `json:"has_second_rifle"`
	BBWeightRifle2  string `json:"bb_weight_rifle_2"`
}

type UpdateRegistrationRequest struct {
	FirstName       *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName        *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Nickname        *string `json:"nickname" validate:"omitempty,min=1,max=100"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone" validate:"omitempty,min=6,max=30"`
	AttendanceType  *string `json:"attendance_type" validate:"omitempty,oneof=morning full_day invited"`
	HasAssociation  *bool   `json:"has_association"`
	AssociationName *string `json:"association_name" validate:"omitempty,max=200"`
	BBWeightPistol  *string `json:"bb_weight_pistol"`
	BBWeightRifle   *string `json:"bb_weight_rifle"`
	HasSecondRifle  *bool   `json:"has_second_rifle"`
	BBWeightRifle2  *string `json:"bb_weight_rifle_2"`
}

type SetApprovalRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" validate:"max=500"`
}

type SetAttendanceRequest struct {
	WasPresent bool   `json:"was_present"`
	Notes      string `json:"notes" validate:"max=500"`
}

type SetPaymentTypeRequest struct {
	PaymentTypeID *string `json:"payment_type_id" validate:"omitempty,uuid"`
}

type AssignTagRequest struct {
	TagID *string `json:"tag_id" validate:"omitempty,uuid"`
}

// CreateRegistration signs a player up for the active game
// @Summary Create registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Param request body CreateRegistrationRequest true "Registration data"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /registrations [post]
func (h *Handler) CreateRegistration(c *fiber.Ctx) error {
	var req CreateRegistrationRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	reg, err := h.regSvc.CreateRegistration(services.CreateRegistrationRequest{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Nickname:        req.Nickname,
		Email:           req.Email,
		Phone:           req.Phone,
		AttendanceType:  req.AttendanceType,
		HasAssociation:  req.HasAssociation,
		AssociationName: req.AssociationName,
		BBWeightPistol:  req.BBWeightPistol,
		BBWeightRifle:   req.BBWeightRifle,
		HasSecondRifle:  req.HasSecondRifle,
		BBWeightRifle2:  req.BBWeightRifle2,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, reg, "Registration created successfully", fiber.StatusCreated)
}

// ConfirmRegistration marks a registration confirmed via the emailed link
// @Summary Confirm registration
// @Tags Registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /registrations/{id}/confirm [post]
func (h *Handler) ConfirmRegistration(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid registration ID", fiber.StatusBadRequest)
	}

	if err := h.regSvc.ConfirmRegistration(id); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Registration confirmed")
}

// ListRegistrationsByGame returns a game's registrations with derived prices
// @Summary List registrations for a game
// @Tags Registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /games/{id}/registrations [get]
func (h *Handler) ListRegistrationsByGame(c *fiber.Ctx) error {
	gameID := c.Params("id")
	if _, err := uuid.Parse(gameID); err != nil {
		return utils.Error(c, "Invalid game ID", fiber.StatusBadRequest)
	}

	views, err := h.regSvc.ListByGame(gameID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, views, "Registrations retrieved successfully")
}

// GetRegistration returns a single registration
// @Summary Get registration
// @Tags Registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /registrations/{id} [get]
func (h *Handler) GetRegistration(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid registration ID", fiber.StatusBadRequest)
	}

	reg, err := h.regSvc.GetRegistration(id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, reg, "Registration retrieved successfully")
}

// UpdateRegistration edits a registration's player-supplied fields
// @Summary Update registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body UpdateRegistrationRequest true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /registrations/{id} [put]
func (h *Handler) UpdateRegistration(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid registration ID", fiber.StatusBadRequest)
	}

	var req UpdateRegistrationRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	reg, err := h.regSvc.UpdateRegistration(id, services.UpdateRegistrationRequest{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Nickname:        req.Nickname,
		Email:           req.Email,
		Phone:           req.Phone,
		AttendanceType:  req.AttendanceType,
		HasAssociation:  req.HasAssociation,
		AssociationName: req.AssociationName,
		BBWeightPistol:  req.BBWeightPistol,
		BBWeightRifle:   req.BBWeightRifle,
		HasSecondRifle:  req.HasSecondRifle,
		BBWeightRifle2:  req.BBWeightRifle2,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, reg, "Registration updated successfully")
}

// DeleteRegistration removes a registration and frees its tag
// @Summary Delete registration
// @Tags Registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /registrations/{id} [delete]
func (h *Handler) DeleteRegistration(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid registration ID", fiber.StatusBadRequest)
	}

	if err := h.regSvc.DeleteRegistration(id); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Registration deleted successfully")
}

// SetApproval approves or rejects a pending registration
// @Summary Approve or reject registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body SetApprovalRequest true "Decision"
// @Success 200 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /registrations/{id}/approval [patch]
func (h *Handler) SetApproval(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid registration ID", fiber.StatusBadRequest)
	}

	var req SetApprovalRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	reg, err := h.regSvc.SetApproval(id, req.Approve, req.Reason)
	if err != nil {
		return serviceError(c, err)
	}

	message := "Registration rejected"
	if req.Approve {
		message = "Registration approved"
	}
	return utils.Success(c, reg, message)
}

// SetAttendance records whether the player showed up on game day
// @Summary Set attendance
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body SetAttendanceRequest true "Attendance"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /registrations/{id}/attendance [patch]
func (h *Handler) SetAttendance(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid registration ID", fiber.StatusBadRequest)
	}

	var req SetAttendanceRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	if err := h.regSvc.SetAttendance(id, req.WasPresent, req.Notes); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Attendance recorded")
}

// SetPaymentType assigns or clears a registration's payment type
// @Summary Set payment type
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body SetPaymentTypeRequest true "Payment type (null clears)"
// @Success 200 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /registrations/{id}/payment-type [patch]
func (h *Handler) SetPaymentType(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid registration ID", fiber.StatusBadRequest)
	}

	var req SetPaymentTypeRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	if err := h.regSvc.SetPaymentType(id, req.PaymentTypeID); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Payment type updated")
}

// AssignTag assigns a tag to a registration, or releases it when tag_id is null
// @Summary Assign or release tag
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body AssignTagRequest true "Tag (null releases)"
// @Success 200 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /registrations/{id}/tag [patch]
func (h *Handler) AssignTag(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid registration ID", fiber.StatusBadRequest)
	}

	var req AssignTagRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	if err := h.regSvc.AssignTag(id, req.TagID); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Tag assignment updated")
}
