package repositories

import (
	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type membershipRepo struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepo{db: db}
}

func (r *membershipRepo) CreateApplication(app *models.MembershipApplication) error {
	return r.db.Create(app).Error
}

func (r *membershipRepo) GetApplicationByID(id string) (*models.MembershipApplication, error) {
	var app models.MembershipApplication
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *membershipRepo) ListApplications() ([]models.MembershipApplication, error) {
	var apps []models.MembershipApplication
	if err := r.db.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *membershipRepo) CountPendingApplications() (int64, error) {
	var count int64
	if err := r.db.Model(&models.MembershipApplication{}).
		Where("status = ?", models.ApprovalPending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *membershipRepo) UpdateApplication(app *models.MembershipApplication) error {
	return r.db.Save(app).Error
}
