package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	"github.com/riskibarqy/pitching-analytics/internal/domain/session"
)

// SessionSummary is one session's per-pitch-type rollup.
type SessionSummary struct {
	Session    session.Session       `json:"session"`
	Player     player.Player         `json:"player"`
	ByType     []pitch.TypeAggregate `json:"by_type"`
	TotalCount int                   `json:"total_count"`
	ValidCount int                   `json:"valid_count"`
}

// SessionService covers session browsing and summaries.
type SessionService struct {
	sessions session.Repository
	pitches  pitch.Repository
	players  player.Repository
	sources  datasource.Repository
}

func NewSessionService(
	sessions session.Repository,
	pitches pitch.Repository,
	players player.Repository,
	sources datasource.Repository,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		pitches:  pitches,
		players:  players,
		sources:  sources,
	}
}

func (s *SessionService) ListByPlayer(ctx context.Context, playerID int64) ([]session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.ListByPlayer")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if _, ok, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	sessions, err := s.sessions.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *SessionService) Pitches(ctx context.Context, sessionID int64) ([]pitch.Pitch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Pitches")
	defer span.End()

	if sessionID <= 0 {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if _, ok, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("%w: session %d", ErrNotFound, sessionID)
	}

	pitches, err := s.pitches.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list pitches: %w", err)
	}
	return pitches, nil
}

func (s *SessionService) Summary(ctx context.Context, sessionID int64) (*SessionSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Summary")
	defer span.End()

	if sessionID <= 0 {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	sess, ok, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: session %d", ErrNotFound, sessionID)
	}

	p, ok, err := s.players.GetByID(ctx, sess.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: player %d", ErrNotFound, sess.PlayerID)
	}

	byType, err := s.pitches.AggregateBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("aggregate pitches: %w", err)
	}

	summary := &SessionSummary{
		Session: sess,
		Player:  p,
		ByType:  byType,
	}
	for _, agg := range byType {
		summary.TotalCount += agg.Count
		summary.ValidCount += agg.ValidPitches
	}
	return summary, nil
}

func (s *SessionService) DataSources(ctx context.Context) ([]datasource.Source, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.DataSources")
	defer span.End()

	sources, err := s.sources.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list data sources: %w", err)
	}
	return sources, nil
}
