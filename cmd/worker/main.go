package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/stockdeck/stockdeck/internal/app"
	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/dashboard"
	"github.com/stockdeck/stockdeck/internal/platform/cache"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
	"github.com/stockdeck/stockdeck/internal/prefs"
	"github.com/stockdeck/stockdeck/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if cfg.RedisAddr == "" {
		logger.Error("worker requires a redis address")
		os.Exit(1)
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	store := kv.NewRedisStore(redisClient, cfg.KVPrefix)
	preferences := prefs.NewStore(ctx, store, logger)

	client := backend.NewClient(cfg.BackendURL, logger)
	dashboardSvc := dashboard.NewService(client, logger)

	refresher := jobs.NewRefresher(dashboardSvc, preferences, store, logger)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskDashboardRefresh, Handler: refresher.HandleDashboardRefresh},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "@every 1m", Task: jobs.NewDashboardRefreshTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
