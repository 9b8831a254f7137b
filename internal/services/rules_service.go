package services

import (
	"errors"
	"fmt"

	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxRuleVersions caps retained snapshots; creation is blocked at capacity
// until one is deleted.
const maxRuleVersions = 3

type RulesService struct {
	settingsRepo repositories.SettingsRepository
	versionRepo  repositories.RuleVersionRepository
}

func NewRulesService(settingsRepo repositories.SettingsRepository, versionRepo repositories.RuleVersionRepository) *RulesService {
	return &RulesService{settingsRepo: settingsRepo, versionRepo: versionRepo}
}

func (s *RulesService) GetRules() (*models.Rules, error) {
	return s.settingsRepo.GetOrInitRules()
}

type UpdateRulesRequest struct {
	Security              *string
	PowerDistances        *string
	PowerDistancesIndoor  *string
	PowerDistancesOutdoor *string
	FairPlay              *string
	ShootingRules         *string
	Pyrotechnics          *string
	TerrainRespect        *string
	SafetyStop            *string
	FormalBans            *string
	ImportantInfo         *string
}

func (s *RulesService) UpdateRules(req UpdateRulesRequest) (*models.Rules, error) {
	rules, err := s.settingsRepo.GetOrInitRules()
	if err != nil {
		return nil, err
	}

	if req.Security != nil {
		rules.Security = *req.Security
	}
	if req.PowerDistances != nil {
		rules.PowerDistances = *req.PowerDistances
	}
	if req.PowerDistancesIndoor != nil {
		rules.PowerDistancesIndoor = *req.PowerDistancesIndoor
	}
	if req.PowerDistancesOutdoor != nil {
		rules.PowerDistancesOutdoor = *req.PowerDistancesOutdoor
	}
	if req.FairPlay != nil {
		rules.FairPlay = *req.FairPlay
	}
	if req.ShootingRules != nil {
		rules.ShootingRules = *req.ShootingRules
	}
	if req.Pyrotechnics != nil {
		rules.Pyrotechnics = *req.Pyrotechnics
	}
	if req.TerrainRespect != nil {
		rules.TerrainRespect = *req.TerrainRespect
	}
	if req.SafetyStop != nil {
		rules.SafetyStop = *req.SafetyStop
	}
	if req.FormalBans != nil {
		rules.FormalBans = *req.FormalBans
	}
	if req.ImportantInfo != nil {
		rules.ImportantInfo = *req.ImportantInfo
	}

	if err := s.settingsRepo.UpdateRules(rules); err != nil {
		return nil, err
	}

	return rules, nil
}

func (s *RulesService) ListVersions() ([]models.RuleVersion, error) {
	return s.versionRepo.ListRuleVersions()
}

// CreateVersion snapshots the current rules under the given name. Fails with
// a conflict once the retention cap is reached.
func (s *RulesService) CreateVersion(versionName string) (*models.RuleVersion, error) {
	count, err := s.versionRepo.CountRuleVersions()
	if err != nil {
		return nil, err
	}
	if count >= maxRuleVersions {
		return nil, fmt.Errorf("maximum of %d rule versions reached, delete one first: %w", maxRuleVersions, ErrConflict)
	}

	rules, err := s.settingsRepo.GetOrInitRules()
	if err != nil {
		return nil, err
	}

	version := &models.RuleVersion{
		ID:                    uuid.New(),
		VersionName:           versionName,
		Security:              rules.Security,
		PowerDistances:        rules.PowerDistances,
		PowerDistancesIndoor:  rules.PowerDistancesIndoor,
		PowerDistancesOutdoor: rules.PowerDistancesOutdoor,
		FairPlay:              rules.FairPlay,
		ShootingRules:         rules.ShootingRules,
		Pyrotechnics:          rules.Pyrotechnics,
		TerrainRespect:        rules.TerrainRespect,
		SafetyStop:            rules.SafetyStop,
		FormalBans:            rules.FormalBans,
		ImportantInfo:         rules.ImportantInfo,
	}

	if err := s.versionRepo.CreateRuleVersion(version); err != nil {
		return nil, err
	}

	return version, nil
}

// ApplyVersion restores a saved snapshot as the current rules document.
func (s *RulesService) ApplyVersion(id string) (*models.RuleVersion, error) {
	version, err := s.versionRepo.GetRuleVersionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rule version not found: %w", ErrNotFound)
		}
		return nil, err
	}

	rules, err := s.settingsRepo.GetOrInitRules()
	if err != nil {
		return nil, err
	}

	rules.Security = version.Security
	rules.PowerDistances = version.PowerDistances
	rules.PowerDistancesIndoor = version.PowerDistancesIndoor
	rules.PowerDistancesOutdoor = version.PowerDistancesOutdoor
	rules.FairPlay = version.FairPlay
	rules.ShootingRules = version.ShootingRules
	rules.Pyrotechnics = version.Pyrotechnics
	rules.TerrainRespect = version.TerrainRespect
	rules.SafetyStop = version.SafetyStop
	rules.FormalBans = version.FormalBans
	rules.ImportantInfo = version.ImportantInfo

	if err := s.settingsRepo.UpdateRules(rules); err != nil {
		return nil, err
	}

	return version, nil
}

func (s *RulesService) DeleteVersion(id string) error {
	if err := s.versionRepo.DeleteRuleVersion(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("rule version not found: %w", ErrNotFound)
		}
		return err
	}
	return nil
}
