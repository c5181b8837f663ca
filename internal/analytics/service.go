// Package analytics drives the analytics page: top sellers and category
// distribution over a selectable time range, stockout predictions, and the
// full urgent restock list.
package analytics

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/restock"
)

const (
	topSellingLimit   = 10
	productFetchLimit = 100
	// DefaultRangeDays is used when the requested range is not one of the
	// supported windows.
	DefaultRangeDays = 30
)

var supportedRanges = map[int]bool{7: true, 14: true, 30: true, 60: true, 90: true}

// NormalizeRange snaps an arbitrary day count to a supported window.
func NormalizeRange(days int) int {
	if supportedRanges[days] {
		return days
	}
	return DefaultRangeDays
}

// BackendPort describes the backend calls this page issues.
type BackendPort interface {
	GetDashboardStats(ctx context.Context) backend.DashboardStats
	TopSelling(ctx context.Context, limit, days int) []backend.TopSeller
	LowStockProducts(ctx context.Context) []backend.Product
	AllPredictions(ctx context.Context) []backend.Prediction
	ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage
	StockHistory(ctx context.Context, productID int64, days int) []backend.StockHistoryEntry
	GetPrediction(ctx context.Context, productID int64) (backend.Prediction, error)
}

// View is the analytics page view model. UrgentRestocks carries the full
// merged list sorted soonest-stockout first.
type View struct {
	Stats          backend.DashboardStats `json:"stats"`
	RangeDays      int                    `json:"range_days"`
	TopSelling     []backend.TopSeller    `json:"top_selling"`
	Categories     []CategoryTotal        `json:"category_distribution"`
	Predictions    []backend.Prediction   `json:"predictions"`
	UrgentRestocks []backend.Prediction   `json:"urgent_restocks"`
}

// Service orchestrates the analytics page.
type Service struct {
	client BackendPort
	logger *slog.Logger
}

// NewService wires the analytics page.
func NewService(client BackendPort, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// Load fetches the page's data concurrently for the given range.
func (s *Service) Load(ctx context.Context, rangeDays int) (View, error) {
	rangeDays = NormalizeRange(rangeDays)

	var (
		stats       backend.DashboardStats
		top         []backend.TopSeller
		lowStock    []backend.Product
		predictions []backend.Prediction
		listing     backend.ProductPage
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats = s.client.GetDashboardStats(ctx)
		return nil
	})
	g.Go(func() error {
		top = s.client.TopSelling(ctx, topSellingLimit, rangeDays)
		return nil
	})
	g.Go(func() error {
		lowStock = s.client.LowStockProducts(ctx)
		return nil
	})
	g.Go(func() error {
		predictions = s.client.AllPredictions(ctx)
		return nil
	})
	g.Go(func() error {
		listing = s.client.ListProducts(ctx, 1, productFetchLimit, "")
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}

	urgent := restock.SortAscending(restock.Merge(predictions, lowStock))

	return View{
		Stats:          stats,
		RangeDays:      rangeDays,
		TopSelling:     top,
		Categories:     CategoryTotals(listing.Products),
		Predictions:    predictions,
		UrgentRestocks: urgent,
	}, nil
}

// StockHistory returns the stock movement series for one product.
func (s *Service) StockHistory(ctx context.Context, productID int64, days int) []backend.StockHistoryEntry {
	return s.client.StockHistory(ctx, productID, NormalizeRange(days))
}

// Prediction returns the stockout forecast for one product.
func (s *Service) Prediction(ctx context.Context, productID int64) (backend.Prediction, error) {
	return s.client.GetPrediction(ctx, productID)
}
