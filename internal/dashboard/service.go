// Package dashboard assembles the landing page: aggregate stats, top
// sellers, the urgent-restock list and the most recent products.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
	"github.com/stockdeck/stockdeck/internal/restock"
)

// Per-page fetch constants.
const (
	recentPageSize  = 10
	topSellingLimit = 5
	topSellingDays  = 30
	urgentDisplayed = 5
)

// BackendPort describes the backend calls this page issues.
type BackendPort interface {
	ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage
	AllPredictions(ctx context.Context) []backend.Prediction
	TopSelling(ctx context.Context, limit, days int) []backend.TopSeller
	LowStockProducts(ctx context.Context) []backend.Product
	GetDashboardStats(ctx context.Context) backend.DashboardStats
	CreateProduct(ctx context.Context, input backend.ProductInput) (backend.Product, error)
}

// View is the dashboard view model.
type View struct {
	Stats          backend.DashboardStats `json:"stats"`
	TopSelling     []backend.TopSeller    `json:"top_selling"`
	UrgentRestocks []backend.Prediction   `json:"urgent_restocks"`
	UrgentCount    int                    `json:"urgent_count"`
	RecentProducts backend.ProductPage    `json:"recent_products"`
}

// Service orchestrates the dashboard fetch cycle.
type Service struct {
	client   BackendPort
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService wires the dashboard page.
func NewService(client BackendPort, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger, validate: validator.New()}
}

// Load fires the page's five independent fetches concurrently and derives
// the view model once all have settled. Degraded reads arrive as empty
// defaults, so a single failing section never blocks the rest.
func (s *Service) Load(ctx context.Context) (View, error) {
	var (
		products    backend.ProductPage
		predictions []backend.Prediction
		topSelling  []backend.TopSeller
		lowStock    []backend.Product
		stats       backend.DashboardStats
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products = s.client.ListProducts(ctx, 1, recentPageSize, "")
		return nil
	})
	g.Go(func() error {
		predictions = s.client.AllPredictions(ctx)
		return nil
	})
	g.Go(func() error {
		topSelling = s.client.TopSelling(ctx, topSellingLimit, topSellingDays)
		return nil
	})
	g.Go(func() error {
		lowStock = s.client.LowStockProducts(ctx)
		return nil
	})
	g.Go(func() error {
		stats = s.client.GetDashboardStats(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}

	urgent := restock.Merge(predictions, lowStock)
	return View{
		Stats:          stats,
		TopSelling:     topSelling,
		UrgentRestocks: restock.Cap(urgent, urgentDisplayed),
		UrgentCount:    len(urgent),
		RecentProducts: products,
	}, nil
}

// CreateProduct validates the quick-add form and registers the product.
// Validation failures never reach the network.
func (s *Service) CreateProduct(ctx context.Context, input backend.ProductInput) (backend.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return backend.Product{}, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return s.client.CreateProduct(ctx, input)
}
