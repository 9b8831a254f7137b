package services

import (
	"testing"
	"time"

	"airsoft-manager-backend/internal/models"

	"github.com/google/uuid"
)

func TestGetActiveGameNoneOpen(t *testing.T) {
	svc := NewGameService(&fakeGameRepo{})

	game, err := svc.GetActiveGame()
	if err != nil {
		t.Fatalf("GetActiveGame() error = %v", err)
	}
	if game != nil {
		t.Errorf("GetActiveGame() = %v, want nil when nothing is open", game)
	}
}

func TestGetActiveGameSkipsClosed(t *testing.T) {
	repo := &fakeGameRepo{}
	repo.games = append(repo.games, &models.Game{
		ID:       uuid.New(),
		Name:     "Closed Game",
		Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		IsActive: true,
		IsClosed: true,
	})
	open := &models.Game{
		ID:       uuid.New(),
		Name:     "Open Game",
		Date:     time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC),
		IsActive: true,
	}
	repo.games = append(repo.games, open)
	svc := NewGameService(repo)

	game, err := svc.GetActiveGame()
	if err != nil {
		t.Fatalf("GetActiveGame() error = %v", err)
	}
	if game == nil || game.ID != open.ID {
		t.Errorf("GetActiveGame() = %v, want the open game", game)
	}
}

func TestToggleClose(t *testing.T) {
	repo := &fakeGameRepo{}
	svc := NewGameService(repo)

	created, err := svc.CreateGame(CreateGameRequest{
		Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Name:     "June Open",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateGame() error = %v", err)
	}

	closed, err := svc.ToggleClose(created.ID.String())
	if err != nil {
		t.Fatalf("ToggleClose() error = %v", err)
	}
	if !closed.IsClosed {
		t.Error("first toggle must close registrations")
	}

	reopened, err := svc.ToggleClose(created.ID.String())
	if err != nil {
		t.Fatalf("second ToggleClose() error = %v", err)
	}
	if reopened.IsClosed {
		t.Error("second toggle must reopen registrations")
	}
}
