package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	players map[int64]player.Player
	order   []int64
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{players: make(map[int64]player.Player)}
	for _, p := range players {
		if p.ID <= 0 {
			repo.nextID++
			p.ID = repo.nextID
		} else if p.ID > repo.nextID {
			repo.nextID = p.ID
		}
		repo.players[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}
	return repo
}

func (r *PlayerRepository) ListActive(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		if !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	return p.ID, nil
}
