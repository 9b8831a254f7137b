package repositories

import (
	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type tagRepo struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) CreateTag(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepo) GetTagByID(id string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepo) GetTagByNumber(number string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("tag_number = ?", number).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepo) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("tag_number ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepo) UpdateTag(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepo) DeleteTag(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Tag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
