package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/stockdeck/stockdeck/internal/advanced"
	"github.com/stockdeck/stockdeck/internal/analytics"
	"github.com/stockdeck/stockdeck/internal/app"
	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/dashboard"
	"github.com/stockdeck/stockdeck/internal/observability"
	"github.com/stockdeck/stockdeck/internal/platform/cache"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
	"github.com/stockdeck/stockdeck/internal/prefs"
	"github.com/stockdeck/stockdeck/internal/products"
	"github.com/stockdeck/stockdeck/internal/sales"
	"github.com/stockdeck/stockdeck/internal/scanner"
	"github.com/stockdeck/stockdeck/internal/scans"
	"github.com/stockdeck/stockdeck/internal/settings"
	"github.com/stockdeck/stockdeck/internal/suppliers"
	"github.com/stockdeck/stockdeck/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	var store kv.Store
	var jobsHandler *jobs.Handler
	if cfg.RedisAddr != "" {
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
		store = kv.NewRedisStore(redisClient, cfg.KVPrefix)
		inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		jobsHandler = jobs.NewHandler(inspector, logger)
	} else {
		logger.Warn("no redis address configured, running on in-process storage")
		store = kv.NewMemoryStore()
	}

	metrics := observability.NewMetrics()

	client := backend.NewClient(cfg.BackendURL, logger,
		backend.WithDegradeRecorder(metrics),
		backend.WithHTTPClient(&http.Client{Timeout: cfg.BackendTimeout}),
	)

	preferences := prefs.NewStore(ctx, store, logger)
	history := scans.NewHistory(ctx, store, logger)

	dashboardSvc := dashboard.NewService(client, logger)
	productsSvc := products.NewService(client, logger)
	salesSvc := sales.NewService(client, logger)
	analyticsSvc := analytics.NewService(client, logger)
	advancedSvc := advanced.NewService(client, logger)
	suppliersSvc := suppliers.NewService(client, logger)
	scannerSvc := scanner.NewService(client, history, logger)
	settingsSvc := settings.NewService(client, preferences, store, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Backend:          client,
		KV:               store,
		DashboardHandler: dashboard.NewHandler(dashboardSvc),
		ProductsHandler:  products.NewHandler(productsSvc),
		SalesHandler:     sales.NewHandler(salesSvc),
		AnalyticsHandler: analytics.NewHandler(analyticsSvc),
		AdvancedHandler:  advanced.NewHandler(advancedSvc),
		SuppliersHandler: suppliers.NewHandler(suppliersSvc),
		ScannerHandler:   scanner.NewHandler(scannerSvc),
		SettingsHandler:  settings.NewHandler(settingsSvc),
		JobsHandler:      jobsHandler,
		Metrics:          metrics,
	})

	srv := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gateway listening", slog.String("addr", cfg.AppAddr), slog.String("backend", cfg.BackendURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.AppRequestTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", slog.Any("error", err))
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server run", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
