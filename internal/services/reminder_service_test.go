package services

import (
	"errors"
	"testing"
	"time"

	"airsoft-manager-backend/internal/models"

	"github.com/google/uuid"
)

func newReminderFixture(t *testing.T) (*ReminderService, *fakeGameRepo, *fakeRegRepo, *fakeNotifier) {
	t.Helper()
	gameRepo := &fakeGameRepo{}
	regRepo := &fakeRegRepo{}
	notifier := &fakeNotifier{}
	svc := NewReminderService(gameRepo, regRepo, notifier)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	}
	return svc, gameRepo, regRepo, notifier
}

func addGame(repo *fakeGameRepo, date time.Time) *models.Game {
	game := &models.Game{ID: uuid.New(), Name: "Sunday Skirmish", Date: date, IsActive: true}
	repo.games = append(repo.games, game)
	return game
}

func addConfirmedReg(repo *fakeRegRepo, gameID uuid.UUID, email string) {
	repo.regs = append(repo.regs, &models.Registration{
		ID:             uuid.New(),
		GameID:         gameID,
		Email:          email,
		FirstName:      "Player",
		AttendanceType: models.AttendanceFullDay,
		Confirmed:      true,
		ApprovalStatus: models.ApprovalApproved,
	})
}

func TestSendDueRemindersTargetsGamesTwoDaysOut(t *testing.T) {
	svc, gameRepo, regRepo, notifier := newReminderFixture(t)

	due := addGame(gameRepo, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))
	tooSoon := addGame(gameRepo, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	addConfirmedReg(regRepo, due.ID, "due@example.com")
	addConfirmedReg(regRepo, tooSoon.ID, "soon@example.com")

	if err := svc.SendDueReminders(); err != nil {
		t.Fatalf("SendDueReminders() error = %v", err)
	}

	if len(notifier.reminders) != 1 || notifier.reminders[0] != "due@example.com" {
		t.Errorf("reminders sent to %v, want only due@example.com", notifier.reminders)
	}
	if !due.ReminderSent {
		t.Error("due game not marked reminded")
	}
	if tooSoon.ReminderSent {
		t.Error("game one day out must not be marked reminded")
	}
}

func TestSendDueRemindersIsIdempotent(t *testing.T) {
	svc, gameRepo, regRepo, notifier := newReminderFixture(t)

	game := addGame(gameRepo, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))
	addConfirmedReg(regRepo, game.ID, "once@example.com")

	if err := svc.SendDueReminders(); err != nil {
		t.Fatalf("first run error = %v", err)
	}
	if err := svc.SendDueReminders(); err != nil {
		t.Fatalf("second run error = %v", err)
	}

	if len(notifier.reminders) != 1 {
		t.Errorf("reminders sent %d times, want 1", len(notifier.reminders))
	}
}

func TestSendDueRemindersSkipsUnconfirmed(t *testing.T) {
	svc, gameRepo, regRepo, notifier := newReminderFixture(t)

	game := addGame(gameRepo, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))
	addConfirmedReg(regRepo, game.ID, "confirmed@example.com")
	regRepo.regs = append(regRepo.regs, &models.Registration{
		ID:        uuid.New(),
		GameID:    game.ID,
		Email:     "unconfirmed@example.com",
		Confirmed: false,
	})

	if err := svc.SendDueReminders(); err != nil {
		t.Fatalf("SendDueReminders() error = %v", err)
	}

	if len(notifier.reminders) != 1 || notifier.reminders[0] != "confirmed@example.com" {
		t.Errorf("reminders sent to %v, want only the confirmed registrant", notifier.reminders)
	}
}

func TestSendDueRemindersMarksGameWithNoConfirmed(t *testing.T) {
	svc, gameRepo, _, notifier := newReminderFixture(t)

	game := addGame(gameRepo, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))

	if err := svc.SendDueReminders(); err != nil {
		t.Fatalf("SendDueReminders() error = %v", err)
	}

	if len(notifier.reminders) != 0 {
		t.Errorf("sent %d reminders for a game with no confirmed registrations", len(notifier.reminders))
	}
	if !game.ReminderSent {
		t.Error("game with no confirmed registrations must still be marked reminded")
	}
}

func TestSendDueRemindersSurvivesPartialFailure(t *testing.T) {
	svc, gameRepo, regRepo, notifier := newReminderFixture(t)

	game := addGame(gameRepo, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))
	addConfirmedReg(regRepo, game.ID, "first@example.com")
	addConfirmedReg(regRepo, game.ID, "broken@example.com")
	addConfirmedReg(regRepo, game.ID, "third@example.com")
	notifier.failFor = map[string]error{"broken@example.com": errors.New("smtp refused")}

	if err := svc.SendDueReminders(); err != nil {
		t.Fatalf("SendDueReminders() error = %v", err)
	}

	if len(notifier.reminders) != 2 {
		t.Errorf("sent %d reminders, want 2 despite one failure", len(notifier.reminders))
	}
	if !game.ReminderSent {
		t.Error("game must be marked reminded even after per-recipient failures")
	}
}

func TestSendGameRemindersIgnoresReminderFlag(t *testing.T) {
	svc, gameRepo, regRepo, notifier := newReminderFixture(t)

	game := addGame(gameRepo, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC))
	game.ReminderSent = true
	addConfirmedReg(regRepo, game.ID, "again@example.com")

	sent, err := svc.SendGameReminders(game.ID.String())
	if err != nil {
		t.Fatalf("SendGameReminders() error = %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if len(notifier.reminders) != 1 {
		t.Errorf("reminder emails = %d, want 1", len(notifier.reminders))
	}
	if !game.ReminderSent {
		t.Error("manual send must not clear the reminder flag")
	}
}

func TestSendGameRemindersUnknownGame(t *testing.T) {
	svc, _, _, _ := newReminderFixture(t)

	_, err := svc.SendGameReminders(uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
