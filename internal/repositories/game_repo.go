package repositories

import (
	"errors"
	"fmt"
	"time"

	"airsoft-manager-backend/internal/models"

	"gorm.io/gorm"
)

type gameRepo struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepo{db: db}
}

func (r *gameRepo) CreateGame(game *models.Game) error {
	if game == nil {
		return errors.New("game cannot be nil")
	}
	return r.db.Create(game).Error
}

func (r *gameRepo) GetGameByID(id string) (*models.Game, error) {
	if id == "" {
		return nil, errors.New("game ID cannot be empty")
	}

	var game models.Game
	if err := r.db.Where("id = ?", id).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return &game, nil
}

// GetActiveGame returns the next game open for registration: today or later,
// active, not closed, earliest date first.
func (r *gameRepo) GetActiveGame() (*models.Game, error) {
	var game models.Game
	today := startOfDay(time.Now())

	if err := r.db.
		Where("date >= ? AND is_active = ? AND is_closed = ?", today, true, false).
		Order("date ASC").
		First(&game).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

// startOfDay is midnight of t's calendar day in t's location. Truncating to
// 24h would snap to UTC midnight and shift the day boundary off by the zone
// offset.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func (r *gameRepo) ListGames(offset, limit int) ([]models.Game, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var games []models.Game
	if err := r.db.
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

func (r *gameRepo) UpdateGame(game *models.Game) error {
	if game == nil {
		return errors.New("game cannot be nil")
	}
	return r.db.Save(game).Error
}

func (r *gameRepo) FindGamesNeedingReminder(date time.Time) ([]models.Game, error) {
	var games []models.Game
	day := date.Format("2006-01-02")

	if err := r.db.
		Where("date = ? AND reminder_sent = ?", day, false).
		Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to find games needing reminder: %w", err)
	}

	return games, nil
}

func (r *gameRepo) MarkReminderSent(id string) error {
	result := r.db.Model(&models.Game{}).
		Where("id = ?", id).
		Update("reminder_sent", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
