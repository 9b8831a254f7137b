package services

import (
	"errors"
	"fmt"
	"time"

	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameService struct {
	gameRepo repositories.GameRepository
}

func NewGameService(gameRepo repositories.GameRepository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

type CreateGameRequest struct {
	Date        time.Time
	Name        string
	Description string
	IsActive    bool
}

func (s *GameService) CreateGame(req CreateGameRequest) (*models.Game, error) {
	game := &models.Game{
		ID:          uuid.New(),
		Date:        req.Date,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}

	if err := s.gameRepo.CreateGame(game); err != nil {
		return nil, err
	}

	return game, nil
}

func (s *GameService) GetGame(id string) (*models.Game, error) {
	game, err := s.gameRepo.GetGameByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return game, nil
}

// GetActiveGame returns the next game open for sign-ups, or nil when there
// is none (not an error: the public page shows an empty state).
func (s *GameService) GetActiveGame() (*models.Game, error) {
	game, err := s.gameRepo.GetActiveGame()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return game, nil
}

func (s *GameService) ListGames(offset, limit int) ([]models.Game, error) {
	return s.gameRepo.ListGames(offset, limit)
}

// ToggleClose flips the registrations-closed flag and reports the new state.
func (s *GameService) ToggleClose(id string) (*models.Game, error) {
	game, err := s.GetGame(id)
	if err != nil {
		return nil, err
	}

	game.IsClosed = !game.IsClosed
	if err := s.gameRepo.UpdateGame(game); err != nil {
		return nil, err
	}

	return game, nil
}
