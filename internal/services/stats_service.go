package services

import (
	"sort"
	"time"

	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"

	"github.com/google/uuid"
)

type StatsService struct {
	gameRepo repositories.GameRepository
	regRepo  repositories.RegistrationRepository
	pricing  *PricingService
}

func NewStatsService(
	gameRepo repositories.GameRepository,
	regRepo repositories.RegistrationRepository,
	pricing *PricingService,
) *StatsService {
	return &StatsService{gameRepo: gameRepo, regRepo: regRepo, pricing: pricing}
}

type Statistics struct {
	TotalGames         int            `json:"total_games"`
	TotalRegistrations int            `json:"total_registrations"`
	TotalConfirmed     int            `json:"total_confirmed"`
	TotalPresent       int            `json:"total_present"`
	TotalRevenue       int            `json:"total_revenue"`
	AveragePerGame     float64        `json:"average_per_game"`
	MorningOnly        int            `json:"morning_only"`
	FullDay            int            `json:"full_day"`
	TopAssociations    map[string]int `json:"top_associations"`
}

type GameStatistics struct {
	GameID             uuid.UUID      `json:"game_id"`
	GameName           string         `json:"game_name"`
	GameDate           time.Time      `json:"game_date"`
	TotalRegistrations int            `json:"total_registrations"`
	Confirmed          int            `json:"confirmed"`
	Present            int            `json:"present"`
	PaymentsValidated  int            `json:"payments_validated"`
	Revenue            int            `json:"revenue"`
	MorningOnly        int            `json:"morning_only"`
	FullDay            int            `json:"full_day"`
	Associations       map[string]int `json:"associations"`
}

// GetStatistics aggregates over the most recent lastGames games. Revenue
// counts only registrations whose payment type generates cost, priced with
// the same derivation the registration reads use.
func (s *StatsService) GetStatistics(lastGames int) (*Statistics, error) {
	if lastGames <= 0 {
		lastGames = 10
	}

	games, err := s.gameRepo.ListGames(0, lastGames)
	if err != nil {
		return nil, err
	}

	settings, partners, err := s.pricing.LoadInputs()
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		TotalGames:      len(games),
		TopAssociations: map[string]int{},
	}
	associations := map[string]int{}

	for _, game := range games {
		regs, err := s.regRepo.ListRegistrationsByGame(game.ID.String())
		if err != nil {
			return nil, err
		}

		stats.TotalRegistrations += len(regs)
		for i := range regs {
			reg := &regs[i]
			if reg.Confirmed {
				stats.TotalConfirmed++
			}
			if reg.WasPresent != nil && *reg.WasPresent {
				stats.TotalPresent++
			}
			switch reg.AttendanceType {
			case models.AttendanceMorning:
				stats.MorningOnly++
			case models.AttendanceFullDay:
				stats.FullDay++
			}
			if reg.PaymentType != nil && reg.PaymentType.GeneratesCost {
				stats.TotalRevenue += CalculatePrice(reg, settings, partners)
			}
			if reg.HasAssociation && reg.AssociationName != "" {
				associations[reg.AssociationName]++
			}
		}
	}

	if len(games) > 0 {
		stats.AveragePerGame = float64(stats.TotalRegistrations) / float64(len(games))
	}
	stats.TopAssociations = topN(associations, 5)

	return stats, nil
}

func (s *StatsService) GetStatisticsByGame(limit int) ([]GameStatistics, error) {
	if limit <= 0 {
		limit = 10
	}

	games, err := s.gameRepo.ListGames(0, limit)
	if err != nil {
		return nil, err
	}

	settings, partners, err := s.pricing.LoadInputs()
	if err != nil {
		return nil, err
	}

	result := make([]GameStatistics, 0, len(games))
	for _, game := range games {
		regs, err := s.regRepo.ListRegistrationsByGame(game.ID.String())
		if err != nil {
			return nil, err
		}

		gs := GameStatistics{
			GameID:             game.ID,
			GameName:           game.Name,
			GameDate:           game.Date,
			TotalRegistrations: len(regs),
			Associations:       map[string]int{},
		}

		for i := range regs {
			reg := &regs[i]
			if reg.Confirmed {
				gs.Confirmed++
			}
			if reg.WasPresent != nil && *reg.WasPresent {
				gs.Present++
			}
			switch reg.AttendanceType {
			case models.AttendanceMorning:
				gs.MorningOnly++
			case models.AttendanceFullDay:
				gs.FullDay++
			}
			if reg.PaymentType != nil && reg.PaymentType.GeneratesCost {
				gs.PaymentsValidated++
				gs.Revenue += CalculatePrice(reg, settings, partners)
			}
			if reg.HasAssociation && reg.AssociationName != "" {
				gs.Associations[reg.AssociationName]++
			}
		}

		result = append(result, gs)
	}

	return result, nil
}

func topN(tally map[string]int, n int) map[string]int {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(tally))
	for name, count := range tally {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	top := map[string]int{}
	for i, e := range entries {
		if i >= n {
			break
		}
		top[e.name] = e.count
	}
	return top
}
