package services

import (
	"errors"
	"fmt"

	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService manages the admin-maintained registries: partner
// associations, payment types, and tags.
type CatalogService struct {
	partnerRepo repositories.PartnerRepository
	paymentRepo repositories.PaymentTypeRepository
	tagRepo     repositories.TagRepository
	regRepo     repositories.RegistrationRepository
}

func NewCatalogService(
	partnerRepo repositories.PartnerRepository,
	paymentRepo repositories.PaymentTypeRepository,
	tagRepo repositories.TagRepository,
	regRepo repositories.RegistrationRepository,
) *CatalogService {
	return &CatalogService{
		partnerRepo: partnerRepo,
		paymentRepo: paymentRepo,
		tagRepo:     tagRepo,
		regRepo:     regRepo,
	}
}

// Partner associations

func (s *CatalogService) ListPartners() ([]models.PartnerAssociation, error) {
	return s.partnerRepo.ListPartnerAssociations()
}

func (s *CatalogService) CreatePartner(name string, isActive bool) (*models.PartnerAssociation, error) {
	if existing, _ := s.partnerRepo.GetPartnerAssociationByName(name); existing != nil {
		return nil, fmt.Errorf("a partner association with this name already exists: %w", ErrConflict)
	}

	assoc := &models.PartnerAssociation{
		ID:       uuid.New(),
		Name:     name,
		IsActive: isActive,
	}
	if err := s.partnerRepo.CreatePartnerAssociation(assoc); err != nil {
		return nil, err
	}
	return assoc, nil
}

func (s *CatalogService) UpdatePartner(id string, name *string, isActive *bool) (*models.PartnerAssociation, error) {
	assoc, err := s.partnerRepo.GetPartnerAssociationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("partner association not found: %w", ErrNotFound)
		}
		return nil, err
	}

	if name != nil && *name != assoc.Name {
		if existing, _ := s.partnerRepo.GetPartnerAssociationByName(*name); existing != nil && existing.ID != assoc.ID {
			return nil, fmt.Errorf("a partner association with this name already exists: %w", ErrConflict)
		}
		assoc.Name = *name
	}
	if isActive != nil {
		assoc.IsActive = *isActive
	}

	if err := s.partnerRepo.UpdatePartnerAssociation(assoc); err != nil {
		return nil, err
	}
	return assoc, nil
}

func (s *CatalogService) DeletePartner(id string) error {
	if err := s.partnerRepo.DeletePartnerAssociation(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("partner association not found: %w", ErrNotFound)
		}
		return err
	}
	return nil
}

// Payment types

func (s *CatalogService) ListPaymentTypes() ([]models.PaymentType, error) {
	return s.paymentRepo.ListPaymentTypes()
}

func (s *CatalogService) CreatePaymentType(name string, generatesCost, isActive bool) (*models.PaymentType, error) {
	if existing, _ := s.paymentRepo.GetPaymentTypeByName(name); existing != nil {
		return nil, fmt.Errorf("a payment type with this name already exists: %w", ErrConflict)
	}

	pt := &models.PaymentType{
		ID:            uuid.New(),
		Name:          name,
		GeneratesCost: generatesCost,
		IsActive:      isActive,
	}
	if err := s.paymentRepo.CreatePaymentType(pt); err != nil {
		return nil, err
	}
	return pt, nil
}

func (s *CatalogService) UpdatePaymentType(id string, name *string, generatesCost, isActive *bool) (*models.PaymentType, error) {
	pt, err := s.paymentRepo.GetPaymentTypeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment type not found: %w", ErrNotFound)
		}
		return nil, err
	}

	if name != nil && *name != pt.Name {
		if existing, _ := s.paymentRepo.GetPaymentTypeByName(*name); existing != nil && existing.ID != pt.ID {
			return nil, fmt.Errorf("a payment type with this name already exists: %w", ErrConflict)
		}
		pt.Name = *name
	}
	if generatesCost != nil {
		pt.GeneratesCost = *generatesCost
	}
	if isActive != nil {
		pt.IsActive = *isActive
	}

	if err := s.paymentRepo.UpdatePaymentType(pt); err != nil {
		return nil, err
	}
	return pt, nil
}

// DeletePaymentType refuses to remove a type still referenced by
// registrations.
func (s *CatalogService) DeletePaymentType(id string) error {
	if _, err := s.paymentRepo.GetPaymentTypeByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("payment type not found: %w", ErrNotFound)
		}
		return err
	}

	count, err := s.regRepo.CountByPaymentType(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("payment type is used by %d registration(s): %w", count, ErrConflict)
	}

	return s.paymentRepo.DeletePaymentType(id)
}

// Tags

func (s *CatalogService) ListTags() ([]models.Tag, error) {
	return s.tagRepo.ListTags()
}

func (s *CatalogService) CreateTag(tagNumber string, isActive bool) (*models.Tag, error) {
	if existing, _ := s.tagRepo.GetTagByNumber(tagNumber); existing != nil {
		return nil, fmt.Errorf("a tag with this number already exists: %w", ErrConflict)
	}

	tag := &models.Tag{
		ID:          uuid.New(),
		TagNumber:   tagNumber,
		IsAvailable: true,
		IsActive:    isActive,
	}
	if err := s.tagRepo.CreateTag(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *CatalogService) UpdateTag(id string, tagNumber *string, isActive *bool) (*models.Tag, error) {
	tag, err := s.tagRepo.GetTagByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag not found: %w", ErrNotFound)
		}
		return nil, err
	}

	if tagNumber != nil && *tagNumber != tag.TagNumber {
		if existing, _ := s.tagRepo.GetTagByNumber(*tagNumber); existing != nil && existing.ID != tag.ID {
			return nil, fmt.Errorf("a tag with this number already exists: %w", ErrConflict)
		}
		tag.TagNumber = *tagNumber
	}
	if isActive != nil {
		tag.IsActive = *isActive
	}

	if err := s.tagRepo.UpdateTag(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag refuses to remove a tag still held by a registration.
func (s *CatalogService) DeleteTag(id string) error {
	if _, err := s.tagRepo.GetTagByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("tag not found: %w", ErrNotFound)
		}
		return err
	}

	count, err := s.regRepo.CountByTag(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("tag is assigned to %d registration(s): %w", count, ErrConflict)
	}

	return s.tagRepo.DeleteTag(id)
}
