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

	"phonelink_backend/internal/events"
	apphttp "phonelink_backend/internal/http"
	"phonelink_backend/internal/http/router"
	"phonelink_backend/internal/phonelink"
	"phonelink_backend/internal/regions"
	"phonelink_backend/internal/settings"
	"phonelink_backend/internal/settings/repository"
	"phonelink_backend/platform/config"
	"phonelink_backend/platform/db"
	"phonelink_backend/platform/logger"
	"phonelink_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "settingsStore", cfg.GetSettingsStore())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	store, closeStore, err := openSettingsStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open settings store", "error", err)
		panic("failed to open settings store: " + err.Error())
	}
	defer closeStore()

	var repo repository.Repository = store
	if ttl := cfg.GetSettingsCacheTTL(); ttl > 0 {
		repo = repository.NewCached(store, ttl)
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)
	eventBus.Subscribe(events.SettingsUpdated{}.EventName(), events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		updated := e.(events.SettingsUpdated)
		log.WithContext(ctx).Info("phone settings changed", "updatedBy", updated.UpdatedBy, "region", updated.Region)
		return nil
	}))

	registry := regions.NewRegistry()
	val := validator.New().MustRegisterValidation(regions.ValidationTag, registry.ValidateRegionCode)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	settingsModule := settings.NewModule(repo, registry, eventBus, val, log)
	phonelinkModule := phonelink.NewModule(settingsModule.Service(), val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   settingsModule.Service(),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			settingsModule,
			phonelinkModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	eventBus.Wait()
	log.Info("server stopped")
}

// openSettingsStore connects the configured backend. The returned func
// releases its connections.
func openSettingsStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Repository, func(), error) {
	switch cfg.GetSettingsStore() {
	case config.StorePostgres:
		var pool *pgxpool.Pool
		if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
			p, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		}); err != nil {
			return nil, nil, err
		}
		log.Info("database connection established")

		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, pool, repository.Migrations, repository.MigrationsDir)
		}); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("database migrations complete")
		return repository.NewPostgres(pool), pool.Close, nil

	case config.StoreRedis:
		opts, err := redis.ParseURL(cfg.GetRedisURL())
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
			return client.Ping(ctx).Err()
		}); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		log.Info("redis connection established", "key", cfg.GetRedisKey())
		return repository.NewRedis(client, cfg.GetRedisKey()), func() { _ = client.Close() }, nil

	default:
		log.Warn("using in-memory settings store; settings are lost on restart")
		return repository.NewMemory(), func() {}, nil
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
