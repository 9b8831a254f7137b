package handlers

import (
	"errors"

	"airsoft-manager-backend/internal/config"
	"airsoft-manager-backend/internal/middleware"
	"airsoft-manager-backend/internal/services"
	"airsoft-manager-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authSvc       *services.AuthService
	gameSvc       *services.GameService
	regSvc        *services.RegistrationService
	catalogSvc    *services.CatalogService
	settingsSvc   *services.SettingsService
	rulesSvc      *services.RulesService
	membershipSvc *services.MembershipService
	statsSvc      *services.StatsService
	reminderSvc   *services.ReminderService
	cfg           *config.Config
}

func NewHandler(
	authSvc *services.AuthService,
	gameSvc *services.GameService,
	regSvc *services.RegistrationService,
	catalogSvc *services.CatalogService,
	settingsSvc *services.SettingsService,
	rulesSvc *services.RulesService,
	membershipSvc *services.MembershipService,
	statsSvc *services.StatsService,
	reminderSvc *services.ReminderService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authSvc:       authSvc,
		gameSvc:       gameSvc,
		regSvc:        regSvc,
		catalogSvc:    catalogSvc,
		settingsSvc:   settingsSvc,
		rulesSvc:      rulesSvc,
		membershipSvc: membershipSvc,
		statsSvc:      statsSvc,
		reminderSvc:   reminderSvc,
		cfg:           cfg,
	}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	// Public routes
	router.Post("/auth/login", h.Login)

	router.Get("/games/active", h.GetActiveGame)
	router.Post("/registrations", h.CreateRegistration)
	router.Post("/registrations/:id/confirm", h.ConfirmRegistration)

	router.Get("/settings/site", h.GetSiteSettings)
	router.Get("/logo", h.GetLogo)
	router.Get("/rules", h.GetRules)
	router.Get("/payment-types", h.ListPaymentTypes)
	router.Post("/membership/applications", h.CreateMembershipApplication)

	// Protected routes (admin JWT required)
	protected := router.Group("", middleware.JWTMiddleware(h.cfg))
	{
		protected.Put("/admin/change-password", h.ChangePassword)

		games := protected.Group("/games")
		{
			games.Post("/", h.CreateGame)
			games.Get("/", h.ListGames)
			games.Get("/:id", h.GetGame)
			games.Patch("/:id/toggle-close", h.ToggleCloseGame)
			games.Get("/:id/registrations", h.ListRegistrationsByGame)
			games.Post("/:id/send-reminders", h.SendGameReminders)
		}

		regs := protected.Group("/registrations")
		{
			regs.Get("/:id", h.GetRegistration)
			regs.Put("/:id", h.UpdateRegistration)
			regs.Delete("/:id", h.DeleteRegistration)
			regs.Patch("/:id/approval", h.SetApproval)
			regs.Patch("/:id/attendance", h.SetAttendance)
			regs.Patch("/:id/payment-type", h.SetPaymentType)
			regs.Patch("/:id/tag", h.AssignTag)
		}

		partners := protected.Group("/partner-associations")
		{
			partners.Get("/", h.ListPartners)
			partners.Post("/", h.CreatePartner)
			partners.Put("/:id", h.UpdatePartner)
			partners.Delete("/:id", h.DeletePartner)
		}

		paymentTypes := protected.Group("/payment-types")
		{
			paymentTypes.Post("/", h.CreatePaymentType)
			paymentTypes.Put("/:id", h.UpdatePaymentType)
			paymentTypes.Delete("/:id", h.DeletePaymentType)
		}

		tags := protected.Group("/tags")
		{
			tags.Get("/", h.ListTags)
			tags.Post("/", h.CreateTag)
			tags.Put("/:id", h.UpdateTag)
			tags.Delete("/:id", h.DeleteTag)
		}

		protected.Put("/settings/site", h.UpdateSiteSettings)
		protected.Get("/pricing-settings", h.GetPricingSettings)
		protected.Put("/pricing-settings", h.UpdatePricingSettings)
		protected.Post("/logo/upload", h.UploadLogo)
		protected.Delete("/logo", h.DeleteLogo)

		protected.Put("/rules", h.UpdateRules)
		versions := protected.Group("/rule-versions")
		{
			versions.Get("/", h.ListRuleVersions)
			versions.Post("/", h.CreateRuleVersion)
			versions.Post("/:id/apply", h.ApplyRuleVersion)
			versions.Delete("/:id", h.DeleteRuleVersion)
		}

		membership := protected.Group("/membership")
		{
			membership.Get("/applications", h.ListMembershipApplications)
			membership.Get("/applications/pending-count", h.CountPendingApplications)
			membership.Put("/applications/:id/status", h.UpdateMembershipStatus)
		}

		protected.Get("/statistics", h.GetStatistics)
		protected.Get("/statistics/by-game", h.GetStatisticsByGame)
		protected.Post("/send-automatic-reminders", h.SendAutomaticReminders)
	}
}

// ErrorHandler handles global errors
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		logrus.WithError(err).Error("unhandled request error")
	}

	return utils.Error(c, message, code)
}

// serviceError maps a service error to the matching HTTP response.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.Error(c, err.Error(), fiber.StatusNotFound)
	case errors.Is(err, services.ErrConflict):
		return utils.Error(c, err.Error(), fiber.StatusConflict)
	case errors.Is(err, services.ErrUnauthorized):
		return utils.Error(c, err.Error(), fiber.StatusUnauthorized)
	case errors.Is(err, services.ErrValidation):
		return utils.Error(c, err.Error(), fiber.StatusBadRequest)
	default:
		logrus.WithError(err).Error("request failed")
		return utils.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
}
