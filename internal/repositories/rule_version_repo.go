package repositories

import (
	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type ruleVersionRepo struct {
	db *gorm.DB
}

func NewRuleVersionRepository(db *gorm.DB) RuleVersionRepository {
	return &ruleVersionRepo{db: db}
}

func (r *ruleVersionRepo) CreateRuleVersion(version *models.RuleVersion) error {
	return r.db.Create(version).Error
}

func (r *ruleVersionRepo) GetRuleVersionByID(id string) (*models.RuleVersion, error) {
	var version models.RuleVersion
	if err := r.db.Where("id = ?", id).First(&version).Error; err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *ruleVersionRepo) ListRuleVersions() ([]models.RuleVersion, error) {
	var versions []models.RuleVersion
	if err := r.db.Order("created_at DESC").Limit(3).Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *ruleVersionRepo) CountRuleVersions() (int64, error) {
	var count int64
	if err := r.db.Model(&models.RuleVersion{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ruleVersionRepo) DeleteRuleVersion(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.RuleVersion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
