// cmd/intake-server/main.go
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

	"go.uber.org/zap"

	"brand-intake/internal/archive"
	"brand-intake/internal/assessment"
	"brand-intake/internal/common/camunda"
	"brand-intake/internal/common/config"
	"brand-intake/internal/common/database"
	"brand-intake/internal/common/logger"
	"brand-intake/internal/common/observability"
	"brand-intake/internal/server"
	"brand-intake/internal/session"
	"brand-intake/internal/webhook"

	sbi "brand-intake/internal/workers/assessment/score-brand-intake"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging config is not known yet.
		boot := logger.New("info", "console", "stdout")
		boot.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting brand intake server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("otel metrics unavailable, continuing without them", zap.Error(err))
		obs = observability.Noop()
	}
	defer obs.Shutdown()

	ctx := context.Background()
	var checks []server.Check

	// --- Session store ---
	var store session.Store
	ttl := time.Duration(cfg.Session.TTL) * time.Second
	switch cfg.Session.Backend {
	case "memory":
		store = session.NewMemoryStore(ttl)
		zapLog.Warn("Using in-memory session store; sessions are lost on restart")
	default:
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		store = session.NewRedisStore(redis.Client, cfg.Session.Prefix, ttl)
		zapLog.Info("Redis connected successfully")
	}

	// --- Assessment archive (optional) ---
	opts := assessment.Options{
		KitDelay:      config.GetDuration(cfg.Assessment.KitDelay),
		Observability: obs,
	}
	if cfg.Database.Postgres.Enabled() {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()

		archiveStore := archive.NewStore(pg.DB)
		if err := archiveStore.EnsureSchema(ctx); err != nil {
			zapLog.Fatal("failed to prepare archive schema", zap.Error(err))
		}
		opts.Archive = archiveStore
		checks = append(checks, server.Check{Name: "archive", Fn: pg.Ping})
		zapLog.Info("PostgreSQL connected successfully")
	}

	hook := webhook.NewClient(cfg.Webhook, log)
	service := assessment.NewService(hook, opts, log)

	// --- Camunda worker (optional) ---
	var scoringWorker *camunda.CamundaWorker
	if cfg.Camunda.Enabled {
		var zeebe *camunda.Client
		err = retryWithBackoff(func() error {
			var err error
			zeebe, err = camunda.NewClient(cfg.Camunda)
			return err
		}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		defer zeebe.Close()
		checks = append(checks, server.Check{Name: "camunda", Fn: zeebe.HealthCheck})

		wcfg := config.GetWorkerConfig(cfg, sbi.TaskType)
		if wcfg.Enabled {
			handler := sbi.NewHandler(sbi.LoadConfig(wcfg), service, log)
			scoringWorker = camunda.NewWorker(
				zeebe.GetClient(),
				sbi.TaskType,
				wcfg.MaxJobsActive,
				config.GetDuration(wcfg.Timeout),
				handler,
				log,
			)
			scoringWorker.Start()
		} else {
			zapLog.Info("worker disabled", zap.String("taskType", sbi.TaskType))
		}
	}

	// --- HTTP server ---
	srv := server.New(cfg, store, service, log, checks...)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}
	if scoringWorker != nil {
		scoringWorker.Stop()
	}

	zapLog.Info("Brand intake server stopped gracefully")
}
