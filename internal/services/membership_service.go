package services

import (
	"errors"
	"fmt"

	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipService struct {
	repo repositories.MembershipRepository
}

func NewMembershipService(repo repositories.MembershipRepository) *MembershipService {
	return &MembershipService{repo: repo}
}

type CreateApplicationRequest struct {
	FirstName         string
	LastName          string
	Address           string
	Email             string
	Phone             string
	HasPlayedBefore   bool
	AirsoftExperience string
	Motivation        string
}

func (s *MembershipService) CreateApplication(req CreateApplicationRequest) (*models.MembershipApplication, error) {
	app := &models.MembershipApplication{
		ID:                uuid.New(),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Address:           req.Address,
		Email:             req.Email,
		Phone:             req.Phone,
		HasPlayedBefore:   req.HasPlayedBefore,
		AirsoftExperience: req.AirsoftExperience,
		Motivation:        req.Motivation,
		Status:            models.ApprovalPending,
	}

	if err := s.repo.CreateApplication(app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *MembershipService) ListApplications() ([]models.MembershipApplication, error) {
	return s.repo.ListApplications()
}

func (s *MembershipService) CountPending() (int64, error) {
	return s.repo.CountPendingApplications()
}

func (s *MembershipService) UpdateStatus(id, status string) (*models.MembershipApplication, error) {
	if status != models.ApprovalApproved && status != models.ApprovalRejected {
		return nil, fmt.Errorf("status must be approved or rejected: %w", ErrValidation)
	}

	app, err := s.repo.GetApplicationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("membership application not found: %w", ErrNotFound)
		}
		return nil, err
	}

	app.Status = status
	if err := s.repo.UpdateApplication(app); err != nil {
		return nil, err
	}

	return app, nil
}
