package handlers

import (
	"airsoft-manager-backend/internal/middleware"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreatePartnerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	IsActive *bool  `json:"is_active"`
}

type UpdatePartnerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	IsActive *bool   `json:"is_active"`
}

type CreatePaymentTypeRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	GeneratesCost *bool  `json:"generates_cost"`
	IsActive      *bool  `json:"is_active"`
}

type UpdatePaymentTypeRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	GeneratesCost *bool   `json:"generates_cost"`
	IsActive      *bool   `json:"is_active"`
}

type CreateTagRequest struct {
	TagNumber string `json:"tag_number" validate:"required,min=1,max=50"`
	IsActive  *bool  `json:"is_active"`
}

type UpdateTagRequest struct {
	TagNumber *string `json:"tag_number" validate:"omitempty,min=1,max=50"`
	IsActive  *bool   `json:"is_active"`
}

func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

// Partner associations

func (h *Handler) ListPartners(c *fiber.Ctx) error {
	partners, err := h.catalogSvc.ListPartners()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, partners, "Partner associations retrieved successfully")
}

func (h *Handler) CreatePartner(c *fiber.Ctx) error {
	var req CreatePartnerRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	partner, err := h.catalogSvc.CreatePartner(req.Name, boolOrDefault(req.IsActive, true))
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, partner, "Partner association created successfully", fiber.StatusCreated)
}

func (h *Handler) UpdatePartner(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid partner association ID", fiber.StatusBadRequest)
	}

	var req UpdatePartnerRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	partner, err := h.catalogSvc.UpdatePartner(id, req.Name, req.IsActive)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, partner, "Partner association updated successfully")
}

func (h *Handler) DeletePartner(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid partner association ID", fiber.StatusBadRequest)
	}

	if err := h.catalogSvc.DeletePartner(id); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Partner association deleted successfully")
}

// Payment types

func (h *Handler) ListPaymentTypes(c *fiber.Ctx) error {
	types, err := h.catalogSvc.ListPaymentTypes()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, types, "Payment types retrieved successfully")
}

func (h *Handler) CreatePaymentType(c *fiber.Ctx) error {
	var req CreatePaymentTypeRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	pt, err := h.catalogSvc.CreatePaymentType(
		req.Name,
		boolOrDefault(req.GeneratesCost, true),
		boolOrDefault(req.IsActive, true),
	)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, pt, "Payment type created successfully", fiber.StatusCreated)
}

func (h *Handler) UpdatePaymentType(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid payment type ID", fiber.StatusBadRequest)
	}

	var req UpdatePaymentTypeRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	pt, err := h.catalogSvc.UpdatePaymentType(id, req.Name, req.GeneratesCost, req.IsActive)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, pt, "Payment type updated successfully")
}

func (h *Handler) DeletePaymentType(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid payment type ID", fiber.StatusBadRequest)
	}

	if err := h.catalogSvc.DeletePaymentType(id); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Payment type deleted successfully")
}

// Tags

func (h *Handler) ListTags(c *fiber.Ctx) error {
	tags, err := h.catalogSvc.ListTags()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, tags, "Tags retrieved successfully")
}

func (h *Handler) CreateTag(c *fiber.Ctx) error {
	var req CreateTagRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	tag, err := h.catalogSvc.CreateTag(req.TagNumber, boolOrDefault(req.IsActive, true))
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, tag, "Tag created successfully", fiber.StatusCreated)
}

func (h *Handler) UpdateTag(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid tag ID", fiber.StatusBadRequest)
	}

	var req UpdateTagRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	tag, err := h.catalogSvc.UpdateTag(id, req.TagNumber, req.IsActive)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, tag, "Tag updated successfully")
}

func (h *Handler) DeleteTag(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.Error(c, "Invalid tag ID", fiber.StatusBadRequest)
	}

	if err := h.catalogSvc.DeleteTag(id); err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, nil, "Tag deleted successfully")
}
