package services

import (
	"errors"
	"fmt"

	"airsoft-manager-backend/internal/config"
	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"
	"airsoft-manager-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RegistrationService struct {
	gameRepo    repositories.GameRepository
	regRepo     repositories.RegistrationRepository
	tagRepo     repositories.TagRepository
	paymentRepo repositories.PaymentTypeRepository
	pricing     *PricingService
	notifier    Notifier
	cfg         *config.Config
}

func NewRegistrationService(
	gameRepo repositories.GameRepository,
	regRepo repositories.RegistrationRepository,
	tagRepo repositories.TagRepository,
	paymentRepo repositories.PaymentTypeRepository,
	pricing *PricingService,
	notifier Notifier,
	cfg *config.Config,
) *RegistrationService {
	return &RegistrationService{
		gameRepo:    gameRepo,
		regRepo:     regRepo,
		tagRepo:     tagRepo,
		paymentRepo: paymentRepo,
		pricing:     pricing,
		notifier:    notifier,
		cfg:         cfg,
	}
}

type CreateRegistrationRequest struct {
	FirstName       string
	LastName        string
	Nickname        string
	Email           string
	Phone           string
	AttendanceType  string
	HasAssociation  bool
	AssociationName string
	BBWeightPistol  string
	BBWeightRifle   string
	HasSecondRifle  bool
	BBWeightRifle2  string
}

// RegistrationView is a registration as returned to clients: the derived
// price and the held tag number ride along, neither is ever stored.
type RegistrationView struct {
	models.Registration
	CalculatedPrice int    `json:"calculated_price"`
	TagNumber       string `json:"tag_number,omitempty"`
}

// CreateRegistration attaches a sign-up to the currently open game. New
// sign-ups always start as approval-pending; only the migration backfill
// marks rows approved without review.
func (s *RegistrationService) CreateRegistration(req CreateRegistrationRequest) (*models.Registration, error) {
	game, err := s.gameRepo.GetActiveGame()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no active game open for registration: %w", ErrNotFound)
		}
		return nil, err
	}

	reg := &models.Registration{
		ID:              uuid.New(),
		GameID:          game.ID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Nickname:        req.Nickname,
		Email:           req.Email,
		Phone:           req.Phone,
		AttendanceType:  req.AttendanceType,
		HasAssociation:  req.HasAssociation,
		AssociationName: req.AssociationName,
		BBWeightPistol:  req.BBWeightPistol,
		BBWeightRifle:   req.BBWeightRifle,
		HasSecondRifle:  req.HasSecondRifle,
		BBWeightRifle2:  req.BBWeightRifle2,
		Confirmed:       false,
		ApprovalStatus:  models.ApprovalPending,
	}

	if err := s.regRepo.CreateRegistration(reg); err != nil {
		return nil, err
	}

	// The QR encodes the same confirmation URL the email carries. Both are
	// best-effort: the registration stands even if they fail.
	confirmURL := fmt.Sprintf("%s/confirm/%s", s.cfg.AppURL, reg.ID.String())
	if filename, err := utils.GenerateQRCodeImage(confirmURL, s.cfg.QRDir); err != nil {
		logrus.WithError(err).Warn("failed to generate registration QR code")
	} else {
		reg.QRPath = "/qrcodes/" + filename
		if err := s.regRepo.UpdateRegistration(reg); err != nil {
			logrus.WithError(err).Warn("failed to store QR path")
		}
	}

	if err := s.notifier.SendConfirmationEmail(reg.Email, reg.FirstName, game.Date, reg.ID.String()); err != nil {
		logrus.WithError(err).WithField("email", reg.Email).Warn("confirmation email failed")
	}

	return reg, nil
}

func (s *RegistrationService) GetRegistration(id string) (*models.Registration, error) {
	reg, err := s.regRepo.GetRegistrationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("registration not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return reg, nil
}

// ListByGame returns a game's registrations with their derived prices.
func (s *RegistrationService) ListByGame(gameID string) ([]RegistrationView, error) {
	if _, err := s.gameRepo.GetGameByID(gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game not found: %w", ErrNotFound)
		}
		return nil, err
	}

	regs, err := s.regRepo.ListRegistrationsByGame(gameID)
	if err != nil {
		return nil, err
	}

	settings, partners, err := s.pricing.LoadInputs()
	if err != nil {
		return nil, err
	}

	views := make([]RegistrationView, 0, len(regs))
	for i := range regs {
		view := RegistrationView{
			Registration:    regs[i],
			CalculatedPrice: CalculatePrice(&regs[i], settings, partners),
		}
		if regs[i].Tag != nil {
			view.TagNumber = regs[i].Tag.TagNumber
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *RegistrationService) ConfirmRegistration(id string) error {
	reg, err := s.GetRegistration(id)
	if err != nil {
		return err
	}

	reg.Confirmed = true
	return s.regRepo.UpdateRegistration(reg)
}

// SetApproval resolves a pending registration. Approval and rejection are
// terminal; the outcome email is best-effort.
func (s *RegistrationService) SetApproval(id string, approve bool, reason string) (*models.Registration, error) {
	reg, err := s.GetRegistration(id)
	if err != nil {
		return nil, err
	}

	if reg.ApprovalStatus != models.ApprovalPending {
		return nil, fmt.Errorf("registration already %s: %w", reg.ApprovalStatus, ErrConflict)
	}

	game, err := s.gameRepo.GetGameByID(reg.GameID.String())
	if err != nil {
		return nil, err
	}

	if approve {
		reg.ApprovalStatus = models.ApprovalApproved
		reg.RejectionReason = ""
	} else {
		reg.ApprovalStatus = models.ApprovalRejected
		reg.RejectionReason = reason
	}

	if err := s.regRepo.UpdateRegistration(reg); err != nil {
		return nil, err
	}

	if approve {
		if err := s.notifier.SendApprovalEmail(reg.Email, reg.FirstName, game.Date); err != nil {
			logrus.WithError(err).WithField("email", reg.Email).Warn("approval email failed")
		}
	} else {
		if err := s.notifier.SendRejectionEmail(reg.Email, reg.FirstName, game.Date, reason); err != nil {
			logrus.WithError(err).WithField("email", reg.Email).Warn("rejection email failed")
		}
	}

	return reg, nil
}

type UpdateRegistrationRequest struct {
	FirstName       *string
	LastName        *string
	Nickname        *string
	Email           *string
	Phone           *string
	AttendanceType  *string
	HasAssociation  *bool
	AssociationName *string
	BBWeightPistol  *string
	BBWeightRifle   *string
	HasSecondRifle  *bool
	BBWeightRifle2  *string
}

func (s *RegistrationService) UpdateRegistration(id string, req UpdateRegistrationRequest) (*models.Registration, error) {
	reg, err := s.GetRegistration(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		reg.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		reg.LastName = *req.LastName
	}
	if req.Nickname != nil {
		reg.Nickname = *req.Nickname
	}
	if req.Email != nil {
		reg.Email = *req.Email
	}
	if req.Phone != nil {
		reg.Phone = *req.Phone
	}
	if req.AttendanceType != nil {
		reg.AttendanceType = *req.AttendanceType
	}
	if req.HasAssociation != nil {
		reg.HasAssociation = *req.HasAssociation
	}
	if req.AssociationName != nil {
		reg.AssociationName = *req.AssociationName
	}
	if req.BBWeightPistol != nil {
		reg.BBWeightPistol = *req.BBWeightPistol
	}
	if req.BBWeightRifle != nil {
		reg.BBWeightRifle = *req.BBWeightRifle
	}
	if req.HasSecondRifle != nil {
		reg.HasSecondRifle = *req.HasSecondRifle
	}
	if req.BBWeightRifle2 != nil {
		reg.BBWeightRifle2 = *req.BBWeightRifle2
	}

	if err := s.regRepo.UpdateRegistration(reg); err != nil {
		return nil, err
	}

	return reg, nil
}

// DeleteRegistration removes a registration and frees any tag it held.
func (s *RegistrationService) DeleteRegistration(id string) error {
	reg, err := s.GetRegistration(id)
	if err != nil {
		return err
	}

	return s.regRepo.Transaction(func(tx repositories.RegistrationTxRepos) error {
		if reg.TagID != nil {
			if err := s.releaseTag(tx.Tags, reg.TagID.String()); err != nil {
				return err
			}
		}
		return tx.Registrations.DeleteRegistration(id)
	})
}

// SetAttendance records presence for the game day. Last write wins; notes
// are optional.
func (s *RegistrationService) SetAttendance(id string, wasPresent bool, notes string) error {
	reg, err := s.GetRegistration(id)
	if err != nil {
		return err
	}

	reg.WasPresent = &wasPresent
	if notes != "" {
		reg.AttendanceNotes = notes
	}
	return s.regRepo.UpdateRegistration(reg)
}

// SetPaymentType assigns or clears a registration's payment type. Setting a
// reference validates the payment; clearing it reverts to unset.
func (s *RegistrationService) SetPaymentType(id string, paymentTypeID *string) error {
	reg, err := s.GetRegistration(id)
	if err != nil {
		return err
	}

	if paymentTypeID == nil {
		reg.PaymentTypeID = nil
		return s.regRepo.UpdateRegistration(reg)
	}

	pt, err := s.paymentRepo.GetPaymentTypeByID(*paymentTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("payment type not found: %w", ErrNotFound)
		}
		return err
	}
	if !pt.IsActive {
		return fmt.Errorf("payment type is disabled: %w", ErrConflict)
	}

	reg.PaymentTypeID = &pt.ID
	return s.regRepo.UpdateRegistration(reg)
}

// AssignTag assigns a tag to a registration, or releases the current one
// when tagID is nil. Assignment requires the tag to be active and available;
// a previously held tag is released as part of the same transaction.
func (s *RegistrationService) AssignTag(id string, tagID *string) error {
	reg, err := s.GetRegistration(id)
	if err != nil {
		return err
	}

	if tagID == nil {
		return s.regRepo.Transaction(func(tx repositories.RegistrationTxRepos) error {
			if reg.TagID != nil {
				if err := s.releaseTag(tx.Tags, reg.TagID.String()); err != nil {
					return err
				}
			}
			reg.TagID = nil
			return tx.Registrations.UpdateRegistration(reg)
		})
	}

	tag, err := s.tagRepo.GetTagByID(*tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("tag not found: %w", ErrNotFound)
		}
		return err
	}
	if !tag.IsActive {
		return fmt.Errorf("tag is out of service: %w", ErrConflict)
	}
	if !tag.IsAvailable {
		return fmt.Errorf("tag is already assigned: %w", ErrConflict)
	}

	return s.regRepo.Transaction(func(tx repositories.RegistrationTxRepos) error {
		if reg.TagID != nil && reg.TagID.String() != tag.ID.String() {
			if err := s.releaseTag(tx.Tags, reg.TagID.String()); err != nil {
				return err
			}
		}

		tag.IsAvailable = false
		if err := tx.Tags.UpdateTag(tag); err != nil {
			return err
		}

		reg.TagID = &tag.ID
		return tx.Registrations.UpdateRegistration(reg)
	})
}

func (s *RegistrationService) releaseTag(tags repositories.TagRepository, tagID string) error {
	tag, err := tags.GetTagByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // tag row already gone, nothing to release
		}
		return err
	}

	tag.IsAvailable = true
	return tags.UpdateTag(tag)
}
