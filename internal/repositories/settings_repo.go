package repositories

import (
	"errors"
	"fmt"

	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

// GetOrInitPricingSettings returns the singleton pricing row, creating it
// with the default tiers (partner=5, other=7, freelance=9) on first read.
func (r *settingsRepo) GetOrInitPricingSettings() (*models.PricingSettings, error) {
	var settings models.PricingSettings
	err := r.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get pricing settings: %w", err)
	}

	settings = models.PricingSettings{
		PartnerAssociationPrice: 5,
		OtherAssociationPrice:   7,
		FreelancePrice:          9,
	}
	if err := r.db.Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to initialize pricing settings: %w", err)
	}

	return &settings, nil
}

func (r *settingsRepo) UpdatePricingSettings(settings *models.PricingSettings) error {
	if settings == nil {
		return errors.New("pricing settings cannot be nil")
	}
	return r.db.Save(settings).Error
}

func (r *settingsRepo) GetOrInitSiteSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	settings = models.SiteSettings{
		SiteTitle:    "Welcome to the LSPA field",
		PrimaryColor: "#4CAF50",
	}
	if err := r.db.Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to initialize site settings: %w", err)
	}

	return &settings, nil
}

func (r *settingsRepo) UpdateSiteSettings(settings *models.SiteSettings) error {
	if settings == nil {
		return errors.New("site settings cannot be nil")
	}
	return r.db.Save(settings).Error
}

func (r *settingsRepo) GetOrInitRules() (*models.Rules, error) {
	var rules models.Rules
	err := r.db.First(&rules).Error
	if err == nil {
		return &rules, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get rules: %w", err)
	}

	rules = models.Rules{}
	if err := r.db.Create(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to initialize rules: %w", err)
	}

	return &rules, nil
}

func (r *settingsRepo) UpdateRules(rules *models.Rules) error {
	if rules == nil {
		return errors.New("rules cannot be nil")
	}
	return r.db.Save(rules).Error
}
