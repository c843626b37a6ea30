package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
)

// PlayerService covers roster reads and administrative player entry.
type PlayerService struct {
	players player.Repository
}

func NewPlayerService(players player.Repository) *PlayerService {
	return &PlayerService{players: players}
}

func (s *PlayerService) ListActive(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListActive")
	defer span.End()

	roster, err := s.players.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return roster, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	p, ok, err := s.players.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player %d", ErrNotFound, id)
	}
	return p, nil
}

// Create registers a player from administrative entry. Names are trimmed,
// the throwing hand defaults to right when omitted.
func (s *PlayerService) Create(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.RapsodoID = strings.TrimSpace(p.RapsodoID)
	p.PitchLogicID = strings.TrimSpace(p.PitchLogicID)
	p.TrackmanID = strings.TrimSpace(p.TrackmanID)
	if p.Throws == player.HandUnknown {
		p.Throws = player.HandRight
	}
	p.Active = true
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.players.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	p.ID = id
	return p, nil
}
