package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	"github.com/riskibarqy/pitching-analytics/internal/infrastructure/repository/memory"
)

func TestPlayerService_CreateNormalizes(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(nil))

	created, err := service.Create(context.Background(), player.Player{
		FirstName: "  Iris ",
		LastName:  " Chen ",
		RapsodoID: " 901 ",
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.FirstName != "Iris" || created.LastName != "Chen" || created.RapsodoID != "901" {
		t.Fatalf("fields must be trimmed: %+v", created)
	}
	if created.Throws != player.HandRight {
		t.Fatalf("unknown hand must default to R, got %q", created.Throws)
	}
	if !created.Active {
		t.Fatalf("created player must be active")
	}
}

func TestPlayerService_CreateRejectsBlankName(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(nil))

	_, err := service.Create(context.Background(), player.Player{FirstName: "  ", LastName: "Chen"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_Get(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	p, err := service.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.LastName != "Whitlock" {
		t.Fatalf("unexpected player: %+v", p)
	}

	if _, err := service.Get(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Get(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
