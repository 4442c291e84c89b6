package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hiring-intel/internal/config"
	"hiring-intel/internal/database"
	"hiring-intel/internal/database/migration"
	dbpostgres "hiring-intel/internal/database/postgres"
	"hiring-intel/internal/infrastructure/cache"
	"hiring-intel/internal/infrastructure/persistence/postgres"
	"hiring-intel/internal/metrics"
	"hiring-intel/internal/pkg/logger"
	"hiring-intel/internal/repository"
	"hiring-intel/internal/usecase"
	"hiring-intel/internal/ws"
	"hiring-intel/migrations"

	"go.uber.org/zap"
)

type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	DB      database.DB
	Cache   *cache.Redis
	Metrics *metrics.Recorder
	Hub     *ws.Hub

	Users      *postgres.UserRepository
	Jobs       repository.JobRepository
	Candidates repository.CandidateRepository
	Results    repository.MatchResultRepository

	Runner           *usecase.MatchRunner
	JobUsecase       *usecase.Jobs
	CandidateUsecase *usecase.Candidates
	MatchUsecase     *usecase.Matches
	RecruiterUsecase *usecase.Recruiters
}

// NewContainer connects to Postgres, brings the schema up to date and wires
// everything above it. Redis is optional.
func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{FS: migrations.FS, Logger: log}
	if cfg.Database.MigrationsDir != "" {
		runner = migration.Runner{Dir: cfg.Database.MigrationsDir, Logger: log}
	}
	applied, err := runner.Apply(ctx, db.SQLDB())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	if len(applied) > 0 {
		log.Info("migrations applied", zap.Int64s("versions", applied))
	}

	users, err := postgres.NewUserRepository(ctx, db.SQLDB())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare user repository: %w", err)
	}

	c := &Container{
		Config:     cfg,
		Logger:     log,
		DB:         db,
		Cache:      cache.NewRedis(cfg.Redis, log.Named("cache")),
		Metrics:    metrics.New(metrics.WithRuntimeCollectors()),
		Hub:        ws.NewHub(log),
		Users:      users,
		Jobs:       repository.NewPostgresJobRepository(db),
		Candidates: repository.NewPostgresCandidateRepository(db),
		Results:    repository.NewPostgresMatchResultRepository(db),
	}

	c.Metrics.ObserveDBPool(db)

	mode, err := usecase.ParseRunMode(cfg.Match.DefaultMode)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("match.default_mode: %w", err)
	}

	c.Runner = usecase.NewMatchRunner(c.Jobs, c.Candidates, c.Results,
		usecase.WithRunnerConfig(usecase.MatchRunnerConfig{
			Concurrency: cfg.Match.Concurrency,
			DefaultMode: mode,
			RunTimeout:  cfg.Match.RunTimeout,
			LockTTL:     cfg.Match.LockTTL,
			RateLimit:   cfg.Match.RateLimit,
		}),
		usecase.WithRunLocker(c.Cache),
		usecase.WithRunnerCache(c.Cache),
		usecase.WithRunnerNotifier(c.Hub),
		usecase.WithRunMetrics(c.Metrics),
		usecase.WithRunnerLogger(log),
	)
	c.JobUsecase = usecase.NewJobUsecase(c.Jobs, c.Users, log)
	c.CandidateUsecase = usecase.NewCandidateUsecase(c.Candidates)
	c.RecruiterUsecase = usecase.NewRecruiterUsecase(c.Jobs, c.Candidates, c.Users)
	c.MatchUsecase = usecase.NewMatchUsecase(c.Jobs, c.Results, c.Runner, c.Cache, c.Hub, log)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Users != nil {
		errs = append(errs, c.Users.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
