// Package cache decorates repositories with an in-process TTL cache on
// their read paths. Write paths pass through and invalidate the keys they
// touch, so cached reads never outlive a local write.
package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	"github.com/riskibarqy/pitching-analytics/internal/domain/session"
	basecache "github.com/riskibarqy/pitching-analytics/internal/platform/cache"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListActive(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:active", func(ctx context.Context) (any, error) {
		items, err := r.next.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	key := "player:id:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	id, err := r.next.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	r.cache.Delete(ctx, "player:active")
	return id, nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

type SessionRepository struct {
	next  session.Repository
	cache *basecache.Store
}

func NewSessionRepository(next session.Repository, cache *basecache.Store) *SessionRepository {
	return &SessionRepository{next: next, cache: cache}
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (session.Session, bool, error) {
	key := sessionByIDKey(id)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedSessionByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return session.Session{}, false, err
	}

	cached, _ := v.(cachedSessionByID)
	return cached.value, cached.exists, nil
}

func (r *SessionRepository) ListByPlayer(ctx context.Context, playerID int64) ([]session.Session, error) {
	key := sessionByPlayerKey(playerID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return append([]session.Session(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]session.Session)
	return append([]session.Session(nil), items...), nil
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) (int64, error) {
	id, err := r.next.Create(ctx, s)
	if err != nil {
		return 0, err
	}
	r.cache.Delete(ctx, sessionByPlayerKey(s.PlayerID))
	return id, nil
}

func (r *SessionRepository) AddPitchCount(ctx context.Context, sessionID int64, delta int) error {
	if err := r.next.AddPitchCount(ctx, sessionID, delta); err != nil {
		return err
	}
	// The owning player is unknown here, so the per-player lists go wholesale.
	r.cache.Delete(ctx, sessionByIDKey(sessionID))
	r.cache.DeletePrefix(ctx, sessionByPlayerPrefix)
	return nil
}

type cachedSessionByID struct {
	value  session.Session
	exists bool
}

const sessionByPlayerPrefix = "session:player:"

func sessionByIDKey(id int64) string {
	return "session:id:" + strconv.FormatInt(id, 10)
}

func sessionByPlayerKey(playerID int64) string {
	return sessionByPlayerPrefix + strconv.FormatInt(playerID, 10)
}

type DataSourceRepository struct {
	next  datasource.Repository
	cache *basecache.Store
}

func NewDataSourceRepository(next datasource.Repository, cache *basecache.Store) *DataSourceRepository {
	return &DataSourceRepository{next: next, cache: cache}
}

func (r *DataSourceRepository) List(ctx context.Context) ([]datasource.Source, error) {
	v, err := r.cache.GetOrLoad(ctx, "source:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]datasource.Source(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]datasource.Source)
	return append([]datasource.Source(nil), items...), nil
}

func (r *DataSourceRepository) GetByName(ctx context.Context, name string) (datasource.Source, bool, error) {
	key := "source:name:" + name
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedSourceByName{value: item, exists: exists}, nil
	})
	if err != nil {
		return datasource.Source{}, false, err
	}

	cached, _ := v.(cachedSourceByName)
	return cached.value, cached.exists, nil
}

type cachedSourceByName struct {
	value  datasource.Source
	exists bool
}
