// Package resilient decorates repositories with a shared circuit breaker.
// The backing database is one dependency, so all four repositories feed the
// same breaker; when it opens, calls fail fast as dependency-unavailable
// instead of piling up on a dead connection pool.
package resilient

import (
	"context"
	"fmt"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	"github.com/riskibarqy/pitching-analytics/internal/domain/session"
	"github.com/riskibarqy/pitching-analytics/internal/platform/resilience"
	"github.com/riskibarqy/pitching-analytics/internal/usecase"
)

func rejected() error {
	return fmt.Errorf("%w: pitch store circuit is open", usecase.ErrDependencyUnavailable)
}

func observe(b *resilience.CircuitBreaker, err error) {
	if err != nil {
		b.RecordFailure()
		return
	}
	b.RecordSuccess()
}

type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.CircuitBreaker
}

func NewPlayerRepository(next player.Repository, breaker *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, breaker: breaker}
}

func (r *PlayerRepository) ListActive(ctx context.Context) ([]player.Player, error) {
	if err := r.breaker.Allow(); err != nil {
		return nil, rejected()
	}
	items, err := r.next.ListActive(ctx)
	observe(r.breaker, err)
	return items, err
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	if err := r.breaker.Allow(); err != nil {
		return player.Player{}, false, rejected()
	}
	item, ok, err := r.next.GetByID(ctx, id)
	observe(r.breaker, err)
	return item, ok, err
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	if err := r.breaker.Allow(); err != nil {
		return 0, rejected()
	}
	id, err := r.next.Create(ctx, p)
	observe(r.breaker, err)
	return id, err
}

type SessionRepository struct {
	next    session.Repository
	breaker *resilience.CircuitBreaker
}

func NewSessionRepository(next session.Repository, breaker *resilience.CircuitBreaker) *SessionRepository {
	return &SessionRepository{next: next, breaker: breaker}
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) (int64, error) {
	if err := r.breaker.Allow(); err != nil {
		return 0, rejected()
	}
	id, err := r.next.Create(ctx, s)
	observe(r.breaker, err)
	return id, err
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (session.Session, bool, error) {
	if err := r.breaker.Allow(); err != nil {
		return session.Session{}, false, rejected()
	}
	item, ok, err := r.next.GetByID(ctx, id)
	observe(r.breaker, err)
	return item, ok, err
}

func (r *SessionRepository) ListByPlayer(ctx context.Context, playerID int64) ([]session.Session, error) {
	if err := r.breaker.Allow(); err != nil {
		return nil, rejected()
	}
	items, err := r.next.ListByPlayer(ctx, playerID)
	observe(r.breaker, err)
	return items, err
}

func (r *SessionRepository) AddPitchCount(ctx context.Context, sessionID int64, delta int) error {
	if err := r.breaker.Allow(); err != nil {
		return rejected()
	}
	err := r.next.AddPitchCount(ctx, sessionID, delta)
	observe(r.breaker, err)
	return err
}

type PitchRepository struct {
	next    pitch.Repository
	breaker *resilience.CircuitBreaker
}

func NewPitchRepository(next pitch.Repository, breaker *resilience.CircuitBreaker) *PitchRepository {
	return &PitchRepository{next: next, breaker: breaker}
}

func (r *PitchRepository) Insert(ctx context.Context, p pitch.Pitch) (int64, error) {
	if err := r.breaker.Allow(); err != nil {
		return 0, rejected()
	}
	id, err := r.next.Insert(ctx, p)
	observe(r.breaker, err)
	return id, err
}

func (r *PitchRepository) ListBySession(ctx context.Context, sessionID int64) ([]pitch.Pitch, error) {
	if err := r.breaker.Allow(); err != nil {
		return nil, rejected()
	}
	items, err := r.next.ListBySession(ctx, sessionID)
	observe(r.breaker, err)
	return items, err
}

func (r *PitchRepository) AggregateBySession(ctx context.Context, sessionID int64) ([]pitch.TypeAggregate, error) {
	if err := r.breaker.Allow(); err != nil {
		return nil, rejected()
	}
	items, err := r.next.AggregateBySession(ctx, sessionID)
	observe(r.breaker, err)
	return items, err
}

type DataSourceRepository struct {
	next    datasource.Repository
	breaker *resilience.CircuitBreaker
}

func NewDataSourceRepository(next datasource.Repository, breaker *resilience.CircuitBreaker) *DataSourceRepository {
	return &DataSourceRepository{next: next, breaker: breaker}
}

func (r *DataSourceRepository) List(ctx context.Context) ([]datasource.Source, error) {
	if err := r.breaker.Allow(); err != nil {
		return nil, rejected()
	}
	items, err := r.next.List(ctx)
	observe(r.breaker, err)
	return items, err
}

func (r *DataSourceRepository) GetByName(ctx context.Context, name string) (datasource.Source, bool, error) {
	if err := r.breaker.Allow(); err != nil {
		return datasource.Source{}, false, rejected()
	}
	item, ok, err := r.next.GetByName(ctx, name)
	observe(r.breaker, err)
	return item, ok, err
}
