package repositories

import (
	"time"

	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type Repository struct {
	DB               *gorm.DB
	UserRepo         UserRepository
	GameRepo         GameRepository
	RegistrationRepo RegistrationRepository
	SettingsRepo     SettingsRepository
	PartnerRepo      PartnerRepository
	PaymentTypeRepo  PaymentTypeRepository
	TagRepo          TagRepository
	RuleVersionRepo  RuleVersionRepository
	MembershipRepo   MembershipRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:               db,
		UserRepo:         NewUserRepository(db),
		GameRepo:         NewGameRepository(db),
		RegistrationRepo: NewRegistrationRepository(db),
		SettingsRepo:     NewSettingsRepository(db),
		PartnerRepo:      NewPartnerRepository(db),
		PaymentTypeRepo:  NewPaymentTypeRepository(db),
		TagRepo:          NewTagRepository(db),
		RuleVersionRepo:  NewRuleVersionRepository(db),
		MembershipRepo:   NewMembershipRepository(db),
	}
}

func AutoMigrate(db *gorm.DB) error {
	// Enable UUID extension
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Registration{},
		&models.PricingSettings{},
		&models.PartnerAssociation{},
		&models.PaymentType{},
		&models.Tag{},
		&models.Rules{},
		&models.RuleVersion{},
		&models.MembershipApplication{},
		&models.SiteSettings{},
	)
}

// Interface definitions

type UserRepository interface {
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error
}

type GameRepository interface {
	CreateGame(game *models.Game) error
	GetGameByID(id string) (*models.Game, error)
	// GetActiveGame returns the earliest upcoming game that is active and
	// still open for registrations, or gorm.ErrRecordNotFound.
	GetActiveGame() (*models.Game, error)
	ListGames(offset, limit int) ([]models.Game, error)
	UpdateGame(game *models.Game) error
	// FindGamesNeedingReminder returns games on the given date whose
	// reminder has not been sent yet.
	FindGamesNeedingReminder(date time.Time) ([]models.Game, error)
	MarkReminderSent(id string) error
}

// RegistrationTxRepos are repositories bound to a single database
// transaction. Writes made through them commit or roll back together;
// writes made through any other repository do not participate.
type RegistrationTxRepos struct {
	Registrations RegistrationRepository
	Tags          TagRepository
}

type RegistrationRepository interface {
	CreateRegistration(reg *models.Registration) error
	GetRegistrationByID(id string) (*models.Registration, error)
	ListRegistrationsByGame(gameID string) ([]models.Registration, error)
	ListConfirmedByGame(gameID string) ([]models.Registration, error)
	UpdateRegistration(reg *models.Registration) error
	DeleteRegistration(id string) error
	CountByPaymentType(paymentTypeID string) (int64, error)
	CountByTag(tagID string) (int64, error)
	// Transaction runs txFunc inside one transaction; txFunc must write
	// through the repositories it is handed, not the service's own.
	Transaction(txFunc func(tx RegistrationTxRepos) error) error
}

// SettingsRepository manages the three singleton rows. The GetOrInit methods
// create the row with model defaults when it does not exist yet, so a first
// read performs a write.
type SettingsRepository interface {
	GetOrInitPricingSettings() (*models.PricingSettings, error)
	UpdatePricingSettings(settings *models.PricingSettings) error
	GetOrInitSiteSettings() (*models.SiteSettings, error)
	UpdateSiteSettings(settings *models.SiteSettings) error
	GetOrInitRules() (*models.Rules, error)
	UpdateRules(rules *models.Rules) error
}

type PartnerRepository interface {
	CreatePartnerAssociation(assoc *models.PartnerAssociation) error
	GetPartnerAssociationByID(id string) (*models.PartnerAssociation, error)
	GetPartnerAssociationByName(name string) (*models.PartnerAssociation, error)
	ListPartnerAssociations() ([]models.PartnerAssociation, error)
	ListActivePartnerAssociations() ([]models.PartnerAssociation, error)
	UpdatePartnerAssociation(assoc *models.PartnerAssociation) error
	DeletePartnerAssociation(id string) error
}

type PaymentTypeRepository interface {
	CreatePaymentType(pt *models.PaymentType) error
	GetPaymentTypeByID(id string) (*models.PaymentType, error)
	GetPaymentTypeByName(name string) (*models.PaymentType, error)
	ListPaymentTypes() ([]models.PaymentType, error)
	UpdatePaymentType(pt *models.PaymentType) error
	DeletePaymentType(id string) error
}

type TagRepository interface {
	CreateTag(tag *models.Tag) error
	GetTagByID(id string) (*models.Tag, error)
	GetTagByNumber(number string) (*models.Tag, error)
	ListTags() ([]models.Tag, error)
	UpdateTag(tag *models.Tag) error
	DeleteTag(id string) error
}

type RuleVersionRepository interface {
	CreateRuleVersion(version *models.RuleVersion) error
	GetRuleVersionByID(id string) (*models.RuleVersion, error)
	ListRuleVersions() ([]models.RuleVersion, error)
	CountRuleVersions() (int64, error)
	DeleteRuleVersion(id string) error
}

type MembershipRepository interface {
	CreateApplication(app *models.MembershipApplication) error
	GetApplicationByID(id string) (*models.MembershipApplication, error)
	ListApplications() ([]models.MembershipApplication, error)
	CountPendingApplications() (int64, error)
	UpdateApplication(app *models.MembershipApplication) error
}
