package app

import (
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/riskibarqy/thursday-league/internal/config"
	"github.com/riskibarqy/thursday-league/internal/domain/gamesettings"
	"github.com/riskibarqy/thursday-league/internal/domain/roster"
	"github.com/riskibarqy/thursday-league/internal/domain/schedule"
	"github.com/riskibarqy/thursday-league/internal/domain/submission"
	"github.com/riskibarqy/thursday-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/thursday-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/thursday-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/thursday-league/internal/platform/id"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
	"github.com/riskibarqy/thursday-league/internal/platform/metrics"
	"github.com/riskibarqy/thursday-league/internal/platform/resilience"
	"github.com/riskibarqy/thursday-league/internal/usecase"
)

// NewHTTPServer builds the API server. The returned cleanup closes the
// database pool and must be called after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	submissionRepo, settingsRepo, cleanup, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var (
		registry *metrics.Registry
		recorder metrics.Recorder = metrics.Nop{}
	)
	if cfg.MetricsEnabled {
		registry = metrics.New()
		recorder = registry
	}

	players := roster.Default()
	ids := idgen.NewUUIDGenerator()

	windowSvc := usecase.NewWindowService(
		scheduleFromConfig(cfg),
		settingsRepo,
		settingsBreaker(cfg),
		recorder,
		logger.Named("window"),
	)
	submissionSvc := usecase.NewSubmissionService(players, windowSvc, submissionRepo, ids, recorder, logger.Named("submission"))
	leaderboardSvc := usecase.NewLeaderboardService(players, submissionRepo, windowSvc)
	teamSvc := usecase.NewTeamService(players)
	adminSvc := usecase.NewAdminService(
		players,
		windowSvc,
		submissionRepo,
		settingsRepo,
		ids,
		usecase.AdminCredentials{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		},
		recorder,
		logger.Named("admin"),
	)

	sessions := newSessionManager(cfg)
	handler := httpapi.NewHandler(
		players,
		windowSvc,
		submissionSvc,
		leaderboardSvc,
		teamSvc,
		adminSvc,
		sessions,
		logger.Named("http"),
	)
	router := httpapi.NewRouter(handler, sessions, registry, logger.Named("http"), cfg.CORSAllowedOrigins, cfg.RequestTimeout)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newRepositories(cfg config.Config, logger *logging.Logger) (submission.Repository, gamesettings.Repository, func() error, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return memory.NewSubmissionRepository(), memory.NewGameSettingsRepository(), func() error { return nil }, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))
	return postgres.NewSubmissionRepository(db), postgres.NewGameSettingsRepository(db), db.Close, nil
}

func scheduleFromConfig(cfg config.Config) schedule.Schedule {
	sched := schedule.Default()
	sched.Location = cfg.LeagueLocation()
	sched.BoundaryWeekday = cfg.LeagueBoundaryWeekday
	sched.BoundaryHour = cfg.LeagueBoundaryHour
	sched.KickoffHour = cfg.LeagueKickoffHour
	if cfg.LeagueGameDuration > 0 {
		sched.GameDuration = cfg.LeagueGameDuration
	}
	return sched
}

func settingsBreaker(cfg config.Config) *resilience.CircuitBreaker {
	return resilience.NewCircuitBreakerFromConfig(resilience.CircuitBreakerConfig{
		Enabled:          cfg.SettingsCircuitEnabled,
		FailureThreshold: cfg.SettingsCircuitFailureCount,
		OpenTimeout:      cfg.SettingsCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.SettingsCircuitHalfOpenMax,
	})
}

func newSessionManager(cfg config.Config) *scs.SessionManager {
	sessions := scs.New()
	sessions.Lifetime = cfg.AdminSessionLifetime
	sessions.Cookie.Name = "thursday_league_admin"
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = cfg.AppEnv != config.EnvDev
	return sessions
}
