package services

import (
	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"
)

type UpdateSiteSettingsRequest struct {
	SiteTitle    *string `json:"site_title" validate:"omitempty,min=1,max=200"`
	PrimaryColor *string `json:"primary_color" validate:"omitempty,min=4,max=20"`
}

type UpdatePricingSettingsRequest struct {
	PartnerAssociationPrice *int `json:"partner_association_price" validate:"omitempty,gte=0"`
	OtherAssociationPrice   *int `json:"other_association_price" validate:"omitempty,gte=0"`
	FreelancePrice          *int `json:"freelance_price" validate:"omitempty,gte=0"`
}

// SettingsService exposes the singleton site and pricing settings. Reads go
// through GetOrInit so defaults materialize on first access.
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetSiteSettings() (*models.SiteSettings, error) {
	return s.settingsRepo.GetOrInitSiteSettings()
}

func (s *SettingsService) UpdateSiteSettings(req UpdateSiteSettingsRequest) (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.GetOrInitSiteSettings()
	if err != nil {
		return nil, err
	}

	if req.SiteTitle != nil {
		settings.SiteTitle = *req.SiteTitle
	}
	if req.PrimaryColor != nil {
		settings.PrimaryColor = *req.PrimaryColor
	}

	if err := s.settingsRepo.UpdateSiteSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) GetPricingSettings() (*models.PricingSettings, error) {
	return s.settingsRepo.GetOrInitPricingSettings()
}

func (s *SettingsService) UpdatePricingSettings(req UpdatePricingSettingsRequest) (*models.PricingSettings, error) {
	settings, err := s.settingsRepo.GetOrInitPricingSettings()
	if err != nil {
		return nil, err
	}

	if req.PartnerAssociationPrice != nil {
		settings.PartnerAssociationPrice = *req.PartnerAssociationPrice
	}
	if req.OtherAssociationPrice != nil {
		settings.OtherAssociationPrice = *req.OtherAssociationPrice
	}
	if req.FreelancePrice != nil {
		settings.FreelancePrice = *req.FreelancePrice
	}

	if err := s.settingsRepo.UpdatePricingSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
