package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"boost-ads/internal/adapter/bedrock"
	httpadapter "boost-ads/internal/adapter/http"
	"boost-ads/internal/adapter/ledger"
	"boost-ads/internal/adapter/postgres"
	"boost-ads/internal/adapter/usecase"
	"boost-ads/internal/config"
	"boost-ads/internal/core/port"
	"boost-ads/internal/db"
	"boost-ads/internal/worker"
)

// main is the entry point of the boost-ads service. It loads configuration,
// optionally runs database migrations, wires the campaign engine together
// and starts the HTTP server plus the delivery simulation worker. On
// receiving a termination signal it gracefully shuts both down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Warn("demo seed failed", slog.Any("error", err))
		}
	}

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer cache.Close()
	}

	var auditor port.ContentAuditor = bedrock.Disabled{}
	if cfg.Auditor.Enabled {
		auditor, err = bedrock.NewAuditor(ctx, cfg.Auditor)
		if err != nil {
			logger.Warn("content auditor unavailable, campaigns will queue for review", slog.Any("error", err))
			auditor = bedrock.Disabled{}
		}
	}

	repo := postgres.NewCampaignRepository(pool)
	wallet := ledger.NewClient(cfg.Ledger)
	lifecycle := usecase.NewLifecycle(repo, auditor, wallet, logger)
	moderation := usecase.NewModeration(repo, lifecycle)
	stats := usecase.NewStats(repo, cache, cfg.Redis.StatsTTL, logger)

	var simulator *worker.DeliverySimulator
	if cfg.Simulator.Enabled {
		traffic := worker.NewRandomTraffic(time.Now().UnixNano())
		simulator = worker.NewDeliverySimulator(repo, lifecycle, traffic, cfg.Simulator.TickInterval, logger)
		simulator.Start()
		defer simulator.Stop()
	}

	handler := httpadapter.NewHandler(lifecycle, moderation, stats, cfg.Auth.JWTSecret, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
