package repositories

import (
	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type registrationRepo struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepo{db: db}
}

func (r *registrationRepo) CreateRegistration(reg *models.Registration) error {
	return r.db.Create(reg).Error
}

func (r *registrationRepo) GetRegistrationByID(id string) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.
		Preload("PaymentType").
		Preload("Tag").
		Where("id = ?", id).
		First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepo) ListRegistrationsByGame(gameID string) ([]models.Registration, error) {
	var regs []models.Registration
	if err := r.db.
		Preload("PaymentType").
		Preload("Tag").
		Where("game_id = ?", gameID).
		Order("created_at ASC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepo) ListConfirmedByGame(gameID string) ([]models.Registration, error) {
	var regs []models.Registration
	if err := r.db.
		Where("game_id = ? AND confirmed = ?", gameID, true).
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepo) UpdateRegistration(reg *models.Registration) error {
	return r.db.Save(reg).Error
}

func (r *registrationRepo) DeleteRegistration(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *registrationRepo) CountByPaymentType(paymentTypeID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Registration{}).
		Where("payment_type_id = ?", paymentTypeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *registrationRepo) CountByTag(tagID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Registration{}).
		Where("tag_id = ?", tagID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *registrationRepo) Transaction(txFunc func(tx RegistrationTxRepos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(RegistrationTxRepos{
			Registrations: NewRegistrationRepository(tx),
			Tags:          NewTagRepository(tx),
		})
	})
}
