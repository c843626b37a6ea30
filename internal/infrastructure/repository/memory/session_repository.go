package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/pitching-analytics/internal/domain/session"
)

type SessionRepository struct {
	mu       sync.RWMutex
	nextID   int64
	sessions map[int64]session.Session
	order    []int64
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[int64]session.Session)}
}

func (r *SessionRepository) Create(_ context.Context, s session.Session) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	s.ID = r.nextID
	r.sessions[s.ID] = s
	r.order = append(r.order, s.ID)
	return s.ID, nil
}

func (r *SessionRepository) GetByID(_ context.Context, id int64) (session.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return s, ok, nil
}

func (r *SessionRepository) ListByPlayer(_ context.Context, playerID int64) ([]session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []session.Session
	for _, id := range r.order {
		s := r.sessions[id]
		if s.PlayerID != playerID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SessionRepository) AddPitchCount(_ context.Context, sessionID int64, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %d not found", sessionID)
	}
	s.TotalPitches += delta
	r.sessions[sessionID] = s
	return nil
}
