package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/rkl-hq/season-engine/external/jobqueue"
	"github.com/rkl-hq/season-engine/internal/config"
	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
	"github.com/rkl-hq/season-engine/internal/infrastructure/repository/memory"
	"github.com/rkl-hq/season-engine/internal/infrastructure/repository/postgres"
	"github.com/rkl-hq/season-engine/internal/interfaces/httpapi"
	"github.com/rkl-hq/season-engine/internal/platform/logging"
	"github.com/rkl-hq/season-engine/internal/platform/resilience"
	"github.com/rkl-hq/season-engine/internal/usecase"
)

// App holds the wired process: HTTP server, database handle (nil when running
// on memory repositories), and the optional QStash publisher.
type App struct {
	Server    *http.Server
	Seasons   *usecase.SeasonService
	Recompute *usecase.RecomputeService
	Publisher *jobqueue.QStashPublisher

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	engineCfg := seasonstats.Config{
		RegularSeasonGames:  cfg.RegularSeasonGames,
		ReplacementFactor:   cfg.ReplacementFactor,
		WinThresholdFactor:  cfg.WinThresholdFactor,
		SortscorePAMEpsilon: cfg.SortscorePAMEpsilon,
	}.Normalize()

	app := &App{}

	var (
		seasonService      *usecase.SeasonService
		leaderboardService *usecase.LeaderboardService
	)
	if cfg.DBURL != "" {
		db, err := otelsqlx.Connect("postgres", cfg.DBURL,
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
		app.db = db

		seasonService = usecase.NewSeasonService(
			postgres.NewGameLogRepository(db),
			postgres.NewTeamRepository(db),
			postgres.NewPlayerRepository(db),
			postgres.NewSeasonWriter(db, cfg.WriteBatchSize, logger),
			engineCfg,
			logger,
		)
		leaderboardService = usecase.NewLeaderboardService(postgres.NewLeaderboardRepository(db), logger)
	} else {
		logger.Warn("DB_URL is empty, running with in-memory repositories")
		writer := memory.NewSeasonWriter()
		seasonService = usecase.NewSeasonService(
			memory.NewGameLogRepository(nil, nil),
			memory.NewTeamRepository(nil),
			memory.NewPlayerRepository(nil),
			writer,
			engineCfg,
			logger,
		)
		leaderboardService = usecase.NewLeaderboardService(memory.NewLeaderboardRepository(writer), logger)
	}

	recomputeService := usecase.NewRecomputeService(seasonService, logger)

	if cfg.QStashEnabled {
		app.Publisher = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailures,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
			},
		}, logger)
	}

	handler := httpapi.NewHandler(seasonService, recomputeService, leaderboardService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	app.Server = server
	app.Seasons = seasonService
	app.Recompute = recomputeService
	return app, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
