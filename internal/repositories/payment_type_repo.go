package repositories

import (
	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type paymentTypeRepo struct {
	db *gorm.DB
}

func NewPaymentTypeRepository(db *gorm.DB) PaymentTypeRepository {
	return &paymentTypeRepo{db: db}
}

func (r *paymentTypeRepo) CreatePaymentType(pt *models.PaymentType) error {
	return r.db.Create(pt).Error
}

func (r *paymentTypeRepo) GetPaymentTypeByID(id string) (*models.PaymentType, error) {
	var pt models.PaymentType
	if err := r.db.Where("id = ?", id).First(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *paymentTypeRepo) GetPaymentTypeByName(name string) (*models.PaymentType, error) {
	var pt models.PaymentType
	if err := r.db.Where("name = ?", name).First(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *paymentTypeRepo) ListPaymentTypes() ([]models.PaymentType, error) {
	var types []models.PaymentType
	if err := r.db.Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *paymentTypeRepo) UpdatePaymentType(pt *models.PaymentType) error {
	return r.db.Save(pt).Error
}

func (r *paymentTypeRepo) DeletePaymentType(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.PaymentType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
