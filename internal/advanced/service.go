// Package advanced drives the advanced analytics page: ML revenue and
// demand forecasts, seasonal patterns, category performance, anomaly
// detection and price suggestions.
//
// The forecasting endpoints answer with an in-band "error" field when the
// backend lacks sales history. Those sections render as absent rather than
// failing the whole page, so Load nils them out and keeps going.
package advanced

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/stockdeck/stockdeck/internal/backend"
)

// DefaultForecastDays is the forecast window used when none is requested.
const DefaultForecastDays = 30

const (
	minForecastDays = 7
	maxForecastDays = 90
)

// ClampForecastDays bounds a requested forecast window.
func ClampForecastDays(days int) int {
	if days == 0 {
		return DefaultForecastDays
	}
	if days < minForecastDays {
		return minForecastDays
	}
	if days > maxForecastDays {
		return maxForecastDays
	}
	return days
}

// BackendPort describes the backend calls this page issues.
type BackendPort interface {
	RevenueForecast(ctx context.Context, days int) (backend.RevenueForecast, error)
	SeasonalTrends(ctx context.Context) (backend.SeasonalTrends, error)
	CategoryPerformance(ctx context.Context) []backend.CategoryPerformance
	Anomalies(ctx context.Context) []backend.Anomaly
	DemandForecast(ctx context.Context, productID int64, days int) (backend.DemandForecast, error)
	PriceOptimization(ctx context.Context, productID int64) (backend.PriceOptimization, error)
}

// View is the advanced analytics page view model. Revenue and Seasonal are
// nil when the backend could not produce them.
type View struct {
	ForecastDays int                           `json:"forecast_days"`
	Revenue      *backend.RevenueForecast      `json:"revenue_forecast,omitempty"`
	Seasonal     *backend.SeasonalTrends       `json:"seasonal_trends,omitempty"`
	Categories   []backend.CategoryPerformance `json:"category_performance"`
	Anomalies    []backend.Anomaly             `json:"anomalies"`
}

// ProductInsights pairs the per-product forecasting results.
type ProductInsights struct {
	Demand *backend.DemandForecast    `json:"demand_forecast,omitempty"`
	Price  *backend.PriceOptimization `json:"price_optimization,omitempty"`
}

// Service orchestrates the advanced analytics page.
type Service struct {
	client BackendPort
	logger *slog.Logger
}

// NewService wires the advanced analytics page.
func NewService(client BackendPort, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// Load fetches all page sections concurrently.
func (s *Service) Load(ctx context.Context, days int) (View, error) {
	days = ClampForecastDays(days)

	view := View{ForecastDays: days}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		forecast, err := s.client.RevenueForecast(ctx, days)
		if err != nil || forecast.Insufficient() {
			s.sectionUnavailable("revenue_forecast", err, forecast.Error)
			return nil
		}
		view.Revenue = &forecast
		return nil
	})
	g.Go(func() error {
		trends, err := s.client.SeasonalTrends(ctx)
		if err != nil || trends.Insufficient() {
			s.sectionUnavailable("seasonal_trends", err, trends.Error)
			return nil
		}
		view.Seasonal = &trends
		return nil
	})
	g.Go(func() error {
		view.Categories = s.client.CategoryPerformance(ctx)
		return nil
	})
	g.Go(func() error {
		view.Anomalies = s.client.Anomalies(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}
	return view, nil
}

// Insights fetches demand and pricing forecasts for one product. A section
// the backend declines comes back nil; both missing is still a valid
// answer for a product with no sales history.
func (s *Service) Insights(ctx context.Context, productID int64, days int) (ProductInsights, error) {
	days = ClampForecastDays(days)

	var out ProductInsights
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		demand, err := s.client.DemandForecast(ctx, productID, days)
		if err != nil || demand.Insufficient() {
			s.sectionUnavailable("demand_forecast", err, demand.Error)
			return nil
		}
		out.Demand = &demand
		return nil
	})
	g.Go(func() error {
		price, err := s.client.PriceOptimization(ctx, productID)
		if err != nil || price.Insufficient() {
			s.sectionUnavailable("price_optimization", err, price.Error)
			return nil
		}
		out.Price = &price
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProductInsights{}, err
	}
	return out, nil
}

func (s *Service) sectionUnavailable(section string, err error, detail string) {
	if err != nil {
		s.logger.Warn("advanced section unavailable", "section", section, "error", err)
		return
	}
	s.logger.Info("advanced section declined", "section", section, "detail", detail)
}
