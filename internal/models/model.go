package models

import (
	"time"

	"github.com/google/uuid"
)

// Approval statuses for registrations and membership applications.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Attendance types for registrations.
const (
	AttendanceMorning = "morning"
	AttendanceFullDay = "full_day"
	AttendanceInvited = "invited"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	IsAdmin        bool      `gorm:"default:true" json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Game is a single scheduled game day. ReminderSent is a one-way flag set by
// the reminder job and never cleared.
type Game struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Date         time.Time `gorm:"type:date;not null;index" json:"date"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsClosed     bool      `gorm:"default:false" json:"is_closed"`
	ReminderSent bool      `gorm:"default:false" json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Registrations []Registration `gorm:"foreignKey:GameID" json:"registrations,omitempty"`
}

// Registration is one player's sign-up for a Game. Its price is never
// stored; it is derived on read from the pricing settings and the partner
// registry.
type Registration struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GameID uuid.UUID `gorm:"type:uuid;index;not null" json:"game_id"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Nickname  string `gorm:"not null" json:"nickname"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`

	AttendanceType string `gorm:"type:varchar(20);not null" json:"attendance_type"` // morning|full_day|invited

	HasAssociation  bool   `gorm:"default:false" json:"has_association"`
	AssociationName string `json:"association_name"`

	// BB weights declared by the player
	BBWeightPistol string `json:"bb_weight_pistol"`
	BBWeightRifle  string `json:"bb_weight_rifle"`
	HasSecondRifle bool   `gorm:"default:false" json:"has_second_rifle"`
	BBWeightRifle2 string `json:"bb_weight_rifle_2"`

	Confirmed       bool   `gorm:"default:false" json:"confirmed"`
	ApprovalStatus  string `gorm:"type:varchar(20);not null" json:"approval_status"` // pending|approved|rejected
	RejectionReason string `gorm:"type:text" json:"rejection_reason"`

	WasPresent      *bool  `json:"was_present"` // nil until settled on game day
	AttendanceNotes string `gorm:"type:text" json:"attendance_notes"`

	PaymentTypeID *uuid.UUID `gorm:"type:uuid" json:"payment_type_id"`
	TagID         *uuid.UUID `gorm:"type:uuid" json:"tag_id"`

	QRPath    string    `json:"qr_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Game        Game         `gorm:"foreignKey:GameID" json:"game,omitempty"`
	PaymentType *PaymentType `gorm:"foreignKey:PaymentTypeID" json:"payment_type,omitempty"`
	Tag         *Tag         `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

// PricingSettings is a singleton row holding the three fee tiers in euros.
type PricingSettings struct {
	ID                      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PartnerAssociationPrice int       `gorm:"default:5" json:"partner_association_price"`
	OtherAssociationPrice   int       `gorm:"default:7" json:"other_association_price"`
	FreelancePrice          int       `gorm:"default:9" json:"freelance_price"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// PartnerAssociation is a club granted the preferential tier. Matching
// against registrations is case-insensitive and restricted to active rows.
type PartnerAssociation struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentType struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string    `gorm:"uniqueIndex;not null" json:"name"`
	GeneratesCost bool      `gorm:"default:true" json:"generates_cost"` // counts toward revenue
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Tag is a physical tracking token. At most one registration holds a tag at
// a time: assignment flips IsAvailable to false, release restores it.
type Tag struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TagNumber   string    `gorm:"uniqueIndex;not null" json:"tag_number"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	IsActive    bool      `gorm:"default:true" json:"is_active"` // false = out of service
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Rules is the singleton current field-rules document.
type Rules struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Security              string `gorm:"type:text" json:"security"`
	PowerDistances        string `gorm:"type:text" json:"power_distances"`
	PowerDistancesIndoor  string `gorm:"type:text" json:"power_distances_indoor"`
	PowerDistancesOutdoor string `gorm:"type:text" json:"power_distances_outdoor"`
	FairPlay              string `gorm:"type:text" json:"fair_play"`
	ShootingRules         string `gorm:"type:text" json:"shooting_rules"`
	Pyrotechnics          string `gorm:"type:text" json:"pyrotechnics"`
	TerrainRespect        string `gorm:"type:text" json:"terrain_respect"`
	SafetyStop            string `gorm:"type:text" json:"safety_stop"`
	FormalBans            string `gorm:"type:text" json:"formal_bans"`
	ImportantInfo         string `gorm:"type:text" json:"important_info"`

	UpdatedAt time.Time `json:"updated_at"`
}

// RuleVersion is a retained snapshot of the rules document. At most three
// versions are kept; creation is blocked at capacity.
type RuleVersion struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VersionName string    `gorm:"not null" json:"version_name"`

	Security              string `gorm:"type:text" json:"security"`
	PowerDistances        string `gorm:"type:text" json:"power_distances"`
	PowerDistancesIndoor  string `gorm:"type:text" json:"power_distances_indoor"`
	PowerDistancesOutdoor string `gorm:"type:text" json:"power_distances_outdoor"`
	FairPlay              string `gorm:"type:text" json:"fair_play"`
	ShootingRules         string `gorm:"type:text" json:"shooting_rules"`
	Pyrotechnics          string `gorm:"type:text" json:"pyrotechnics"`
	TerrainRespect        string `gorm:"type:text" json:"terrain_respect"`
	SafetyStop            string `gorm:"type:text" json:"safety_stop"`
	FormalBans            string `gorm:"type:text" json:"formal_bans"`
	ImportantInfo         string `gorm:"type:text" json:"important_info"`

	CreatedAt time.Time `json:"created_at"`
}

type MembershipApplication struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName         string    `gorm:"not null" json:"first_name"`
	LastName          string    `gorm:"not null" json:"last_name"`
	Address           string    `gorm:"type:text;not null" json:"address"`
	Email             string    `gorm:"not null" json:"email"`
	Phone             string    `gorm:"not null" json:"phone"`
	HasPlayedBefore   bool      `gorm:"default:false" json:"has_played_before"`
	AirsoftExperience string    `gorm:"not null" json:"airsoft_experience"`
	Motivation        string    `gorm:"type:text;not null" json:"motivation"`
	Status            string    `gorm:"type:varchar(20);default:'pending'" json:"status"` // pending|approved|rejected
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type SiteSettings struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SiteTitle    string    `gorm:"default:'Welcome to the LSPA field'" json:"site_title"`
	PrimaryColor string    `gorm:"default:'#4CAF50'" json:"primary_color"`
	UpdatedAt    time.Time `json:"updated_at"`
}
