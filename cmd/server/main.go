package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/hstraders/interestledger/internal/adapter/http"
	"github.com/hstraders/interestledger/internal/adapter/http/handler"
	"github.com/hstraders/interestledger/internal/adapter/http/middleware"
	postgresRepo "github.com/hstraders/interestledger/internal/adapter/repository/postgres"
	redisRepo "github.com/hstraders/interestledger/internal/adapter/repository/redis"
	"github.com/hstraders/interestledger/internal/infrastructure/config"
	"github.com/hstraders/interestledger/internal/infrastructure/logger"
	"github.com/hstraders/interestledger/internal/infrastructure/metrics"
	"github.com/hstraders/interestledger/internal/infrastructure/postgres"
	"github.com/hstraders/interestledger/internal/infrastructure/redis"
	"github.com/hstraders/interestledger/internal/infrastructure/scheduler"
	"github.com/hstraders/interestledger/internal/usecase"
)

// rateLimiterIdle is how long a client's limiter survives without requests.
const rateLimiterIdle = time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := connectPostgres(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()
	logger.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Connect to Redis
	redisClient, err := redis.NewOptionalClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		logger.Info().Msg("connected to redis")
	} else {
		logger.Warn().Msg("REDIS_URL empty, running without settings cache and idempotency")
	}

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	voucherRepo := postgresRepo.NewVoucherRepository(pool)
	settingsRepo := postgresRepo.NewSettingsRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrierWithLogger(logger)

	settingsCache, idempotencyStore := redisStores(redisClient, m)

	// Initialize use cases
	voucherUC := usecase.NewVoucherUseCase(txManager, voucherRepo, idGen, retrier, m)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, settingsCache, cfg.SettingsCacheTTL, retrier, logger)
	interestUC := usecase.NewInterestUseCase(voucherRepo, settingsUC, m, logger)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m)

	// Background jobs
	sched, err := newScheduler(cfg, logger, interestUC, rateLimiter)
	if err != nil {
		return err
	}
	sched.Start()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		VoucherHandler:     handler.NewVoucherHandler(voucherUC),
		SettingsHandler:    handler.NewSettingsHandler(settingsUC),
		InterestHandler:    handler.NewInterestHandler(interestUC, m),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		RateLimiter:        rateLimiter,
		Metrics:            m,
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down server...")
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("scheduled jobs did not finish before shutdown")
	}

	logger.Info().Msg("server stopped")
	return nil
}

// connectPostgres retries the initial connection until DatabaseTimeout elapses.
func connectPostgres(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	err := backoff.RetryNotify(func() error {
		p, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseTimeout,
		})
		if err != nil {
			return err
		}
		pool = p
		return nil
	}, backoff.WithContext(startupBackOff(cfg.DatabaseTimeout), ctx), func(err error, wait time.Duration) {
		logger.Warn().Err(err).Dur("retry_in", wait).Msg("postgres not ready")
	})

	return pool, err
}

func startupBackOff(maxElapsed time.Duration) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxElapsed
	return b
}

// redisStores returns nil interfaces when Redis is disabled.
func redisStores(client *goredis.Client, m *metrics.Metrics) (usecase.SettingsCache, usecase.IdempotencyStore) {
	if client == nil {
		return nil, nil
	}
	return redisRepo.NewSettingsCache(client).WithMetrics(m), redisRepo.NewIdempotencyStore(client)
}

func newScheduler(
	cfg *config.Config,
	logger zerolog.Logger,
	interestUC *usecase.InterestUseCase,
	rateLimiter *middleware.RateLimiter,
) (*scheduler.Scheduler, error) {
	sched := scheduler.New(logger)

	if cfg.SnapshotCron != "" {
		if err := sched.Add("receivable-snapshot", cfg.SnapshotCron, interestUC.Snapshot); err != nil {
			return nil, fmt.Errorf("invalid SNAPSHOT_CRON: %w", err)
		}
	}

	if err := sched.Add("rate-limiter-cleanup", "@every 1h", func(ctx context.Context) error {
		removed := rateLimiter.CleanupLimiters(rateLimiterIdle)
		logger.Debug().Int("removed", removed).Msg("rate limiters pruned")
		return nil
	}); err != nil {
		return nil, err
	}

	return sched, nil
}
