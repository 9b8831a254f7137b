package services

import (
	"errors"
	"fmt"
	"time"

	"airsoft-manager-backend/internal/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// reminderLeadDays is how far ahead of a game the automated reminder fires.
const reminderLeadDays = 2

// ReminderService sends game-day reminder emails. The automated path is
// idempotent per game through the one-way reminder_sent flag; a single job
// instance is assumed process-wide.
type ReminderService struct {
	gameRepo repositories.GameRepository
	regRepo  repositories.RegistrationRepository
	notifier Notifier
	now      func() time.Time
}

func NewReminderService(
	gameRepo repositories.GameRepository,
	regRepo repositories.RegistrationRepository,
	notifier Notifier,
) *ReminderService {
	return &ReminderService{
		gameRepo: gameRepo,
		regRepo:  regRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

// SendDueReminders is the daily job body, also run by the manual admin
// trigger. It selects games two days out whose reminder has not been sent,
// emails every confirmed registrant, and marks each game reminded exactly
// once. Per-recipient failures are logged and counted but never abort the
// batch or prevent the flag write.
func (s *ReminderService) SendDueReminders() error {
	targetDate := s.now().AddDate(0, 0, reminderLeadDays)

	games, err := s.gameRepo.FindGamesNeedingReminder(targetDate)
	if err != nil {
		return fmt.Errorf("failed to select games for reminder: %w", err)
	}

	if len(games) == 0 {
		logrus.WithField("date", targetDate.Format("2006-01-02")).Debug("no games due for reminder")
		return nil
	}

	for _, game := range games {
		log := logrus.WithFields(logrus.Fields{
			"game": game.Name,
			"date": game.Date.Format("2006-01-02"),
		})

		regs, err := s.regRepo.ListConfirmedByGame(game.ID.String())
		if err != nil {
			log.WithError(err).Error("failed to load confirmed registrations")
			continue
		}

		if len(regs) == 0 {
			// Nothing to send; still marked so the game never becomes due again.
			if err := s.gameRepo.MarkReminderSent(game.ID.String()); err != nil {
				log.WithError(err).Error("failed to mark reminder sent")
			}
			log.Info("no confirmed registrations, game marked reminded")
			continue
		}

		sent, failed := 0, 0
		for _, reg := range regs {
			if err := s.notifier.SendReminderEmail(reg.Email, reg.FirstName, game.Date); err != nil {
				failed++
				log.WithError(err).WithField("email", reg.Email).Warn("reminder email failed")
				continue
			}
			sent++
		}

		if err := s.gameRepo.MarkReminderSent(game.ID.String()); err != nil {
			log.WithError(err).Error("failed to mark reminder sent")
			continue
		}

		log.WithFields(logrus.Fields{"sent": sent, "failed": failed}).Info("reminder batch done")
	}

	return nil
}

// SendGameReminders is the per-game admin action. It does not consult or
// touch the reminder_sent flag; it simply re-sends to every confirmed
// registrant of the given game.
func (s *ReminderService) SendGameReminders(gameID string) (int, error) {
	game, err := s.gameRepo.GetGameByID(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("game not found: %w", ErrNotFound)
		}
		return 0, err
	}

	regs, err := s.regRepo.ListConfirmedByGame(gameID)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, reg := range regs {
		if err := s.notifier.SendReminderEmail(reg.Email, reg.FirstName, game.Date); err != nil {
			logrus.WithError(err).WithField("email", reg.Email).Warn("reminder email failed")
			continue
		}
		sent++
	}

	return sent, nil
}
