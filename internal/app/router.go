package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/stockdeck/stockdeck/internal/advanced"
	"github.com/stockdeck/stockdeck/internal/analytics"
	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/dashboard"
	"github.com/stockdeck/stockdeck/internal/observability"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
	"github.com/stockdeck/stockdeck/internal/products"
	"github.com/stockdeck/stockdeck/internal/sales"
	"github.com/stockdeck/stockdeck/internal/scanner"
	"github.com/stockdeck/stockdeck/internal/settings"
	"github.com/stockdeck/stockdeck/internal/suppliers"
	"github.com/stockdeck/stockdeck/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger  *slog.Logger
	Config  *Config
	Backend *backend.Client
	KV      kv.Store

	DashboardHandler *dashboard.Handler
	ProductsHandler  *products.Handler
	SalesHandler     *sales.Handler
	AnalyticsHandler *analytics.Handler
	AdvancedHandler  *advanced.Handler
	SuppliersHandler *suppliers.Handler
	ScannerHandler   *scanner.Handler
	SettingsHandler  *settings.Handler
	JobsHandler      *jobs.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router serving the page view models.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		backendUp := params.Backend != nil && params.Backend.Health(r.Context())
		if !backendUp {
			status = "degraded"
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"status": status, "backend_up": backendUp})
	})

	r.Route("/pages", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			params.DashboardHandler.Routes(r)
			if params.KV != nil {
				r.Get("/snapshot", snapshotHandler(params.KV))
			}
		})
		r.Route("/products", params.ProductsHandler.Routes)
		r.Route("/sales", params.SalesHandler.Routes)
		r.Route("/analytics", params.AnalyticsHandler.Routes)
		r.Route("/advanced-analytics", params.AdvancedHandler.Routes)
		r.Route("/suppliers", params.SuppliersHandler.Routes)
		r.Route("/scanner", params.ScannerHandler.Routes)
		r.Route("/settings", params.SettingsHandler.Routes)
	})

	if params.JobsHandler != nil {
		r.Route("/jobs", params.JobsHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}

// snapshotHandler serves the background-warmed dashboard view. A missing
// snapshot is a 404; callers fall back to the live page endpoint.
func snapshotHandler(store kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := jobs.LoadSnapshot(r.Context(), store)
		if err != nil {
			if errors.Is(err, kv.ErrNotFound) {
				httpx.Problem(w, http.StatusNotFound, "Not Found", "no dashboard snapshot available")
				return
			}
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, snap)
	}
}
