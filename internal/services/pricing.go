package services

import (
	"strings"

	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"
)

// CalculatePrice derives the fee for a registration. Pure: no side effects,
// total over valid inputs. First match wins:
//  1. invited guests play for free,
//  2. no association (or a blank name) pays the freelance tier,
//  3. an active partner association (case-insensitive exact name match) pays
//     the partner tier, anything else the other-association tier.
func CalculatePrice(reg *models.Registration, settings *models.PricingSettings, partners []models.PartnerAssociation) int {
	if reg.AttendanceType == models.AttendanceInvited {
		return 0
	}

	name := strings.TrimSpace(reg.AssociationName)
	if !reg.HasAssociation || name == "" {
		return settings.FreelancePrice
	}

	for _, partner := range partners {
		if partner.IsActive && strings.EqualFold(partner.Name, name) {
			return settings.PartnerAssociationPrice
		}
	}

	return settings.OtherAssociationPrice
}

// PricingService loads the inputs CalculatePrice needs. Reading the pricing
// settings may create the singleton row with defaults on first use.
type PricingService struct {
	settingsRepo repositories.SettingsRepository
	partnerRepo  repositories.PartnerRepository
}

func NewPricingService(settingsRepo repositories.SettingsRepository, partnerRepo repositories.PartnerRepository) *PricingService {
	return &PricingService{settingsRepo: settingsRepo, partnerRepo: partnerRepo}
}

func (s *PricingService) PriceFor(reg *models.Registration) (int, error) {
	settings, partners, err := s.LoadInputs()
	if err != nil {
		return 0, err
	}
	return CalculatePrice(reg, settings, partners), nil
}

// LoadInputs fetches the pricing settings and the active partner registry
// once, so list endpoints can price many registrations without re-querying.
func (s *PricingService) LoadInputs() (*models.PricingSettings, []models.PartnerAssociation, error) {
	settings, err := s.settingsRepo.GetOrInitPricingSettings()
	if err != nil {
		return nil, nil, err
	}

	partners, err := s.partnerRepo.ListActivePartnerAssociations()
	if err != nil {
		return nil, nil, err
	}

	return settings, partners, nil
}
