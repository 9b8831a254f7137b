package repositories

import (
	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type partnerRepo struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepo{db: db}
}

func (r *partnerRepo) CreatePartnerAssociation(assoc *models.PartnerAssociation) error {
	return r.db.Create(assoc).Error
}

func (r *partnerRepo) GetPartnerAssociationByID(id string) (*models.PartnerAssociation, error) {
	var assoc models.PartnerAssociation
	if err := r.db.Where("id = ?", id).First(&assoc).Error; err != nil {
		return nil, err
	}
	return &assoc, nil
}

// GetPartnerAssociationByName matches case-insensitively.
func (r *partnerRepo) GetPartnerAssociationByName(name string) (*models.PartnerAssociation, error) {
	var assoc models.PartnerAssociation
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&assoc).Error; err != nil {
		return nil, err
	}
	return &assoc, nil
}

func (r *partnerRepo) ListPartnerAssociations() ([]models.PartnerAssociation, error) {
	var assocs []models.PartnerAssociation
	if err := r.db.Order("name ASC").Find(&assocs).Error; err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *partnerRepo) ListActivePartnerAssociations() ([]models.PartnerAssociation, error) {
	var assocs []models.PartnerAssociation
	if err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&assocs).Error; err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *partnerRepo) UpdatePartnerAssociation(assoc *models.PartnerAssociation) error {
	return r.db.Save(assoc).Error
}

func (r *partnerRepo) DeletePartnerAssociation(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.PartnerAssociation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
