package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/pitching-analytics/internal/config"
	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	"github.com/riskibarqy/pitching-analytics/internal/domain/session"
	cacherepo "github.com/riskibarqy/pitching-analytics/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/pitching-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pitching-analytics/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/pitching-analytics/internal/infrastructure/repository/resilient"
	"github.com/riskibarqy/pitching-analytics/internal/interfaces/httpapi"
	"github.com/riskibarqy/pitching-analytics/internal/platform/cache"
	"github.com/riskibarqy/pitching-analytics/internal/platform/logging"
	"github.com/riskibarqy/pitching-analytics/internal/platform/resilience"
	"github.com/riskibarqy/pitching-analytics/internal/usecase"
)

type repositories struct {
	players  player.Repository
	sessions session.Repository
	pitches  pitch.Repository
	sources  datasource.Repository
}

// NewHTTPServer wires repositories, services, and the router. With DB_URL
// set the service runs against postgres; without it an in-memory seed store
// backs everything, which is how local development and tests run.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeDB, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	policy := usecase.IngestPolicy{
		AutoCreatePlayers: cfg.IngestAutoCreatePlayers,
		DefaultHand:       player.Hand(cfg.IngestDefaultHand),
		DateFallbackToday: cfg.IngestDateFallbackToday,
		ValidThreshold:    cfg.IngestValidThreshold,
		IssueLimit:        cfg.IngestIssueLimit,
		SessionType:       cfg.IngestSessionType,
	}

	uploadSvc := usecase.NewUploadService(repos.players, repos.sessions, repos.pitches, repos.sources, policy, logger)
	playerSvc := usecase.NewPlayerService(repos.players)
	sessionSvc := usecase.NewSessionService(repos.sessions, repos.pitches, repos.players, repos.sources)

	handler := httpapi.NewHandler(uploadSvc, playerSvc, sessionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		closeDB()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeDB, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("storage backend", "kind", "memory")
		return repositories{
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			sessions: memory.NewSessionRepository(),
			pitches:  memory.NewPitchRepository(),
			sources:  memory.NewDataSourceRepository(memory.SeedDataSources()),
		}, func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	logger.Info("storage backend", "kind", "postgres", "database", dbNameFromURL(cfg.DBURL))
	repos := repositories{
		players:  postgres.NewPlayerRepository(db),
		sessions: postgres.NewSessionRepository(db),
		pitches:  postgres.NewPitchRepository(db),
		sources:  postgres.NewDataSourceRepository(db),
	}

	// Decorator order matters: the breaker sits against the database, the
	// cache in front of it, so cached reads keep answering while the
	// circuit is open.
	if cfg.DBBreakerEnabled {
		breakerCfg := resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBBreakerEnabled,
			FailureThreshold: cfg.DBBreakerFailureThreshold,
			OpenTimeout:      cfg.DBBreakerOpenTimeout,
			ProbeLimit:       cfg.DBBreakerProbeLimit,
		})
		breaker := resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.ProbeLimit)
		repos = repositories{
			players:  resilient.NewPlayerRepository(repos.players, breaker),
			sessions: resilient.NewSessionRepository(repos.sessions, breaker),
			pitches:  resilient.NewPitchRepository(repos.pitches, breaker),
			sources:  resilient.NewDataSourceRepository(repos.sources, breaker),
		}
	}

	if cfg.CacheTTL > 0 {
		store := cache.NewStore(cfg.CacheTTL)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.sessions = cacherepo.NewSessionRepository(repos.sessions, store)
		repos.sources = cacherepo.NewDataSourceRepository(repos.sources, store)
	}

	return repos, db.Close, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
