// Package sales drives the sales page: the recorded-sale listing with
// per-window revenue totals and the sale-recording action.
package sales

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
)

// The stats windows are computed client-side, so the listing pulls a deep
// page of sales; the product join only needs the first hundred products.
const (
	salesFetchLimit   = 1000
	productFetchLimit = 100
)

// BackendPort describes the backend calls this page issues.
type BackendPort interface {
	ListSales(ctx context.Context, skip, limit int) []backend.Sale
	ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage
	CreateSale(ctx context.Context, input backend.SaleInput) (backend.Sale, error)
}

// View is the sales page view model.
type View struct {
	Sales    []Row             `json:"sales"`
	Totals   Totals            `json:"stats"`
	Products []backend.Product `json:"products"`
}

// Service orchestrates the sales page.
type Service struct {
	client   BackendPort
	logger   *slog.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewService wires the sales page.
func NewService(client BackendPort, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger, validate: validator.New(), now: time.Now}
}

// Load fetches sales and products concurrently, then derives totals and
// display rows.
func (s *Service) Load(ctx context.Context) (View, error) {
	var (
		saleList []backend.Sale
		listing  backend.ProductPage
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		saleList = s.client.ListSales(ctx, 0, salesFetchLimit)
		return nil
	})
	g.Go(func() error {
		listing = s.client.ListProducts(ctx, 1, productFetchLimit, "")
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}

	return View{
		Sales:    ResolveNames(saleList, listing.Products),
		Totals:   WindowTotals(saleList, s.now()),
		Products: listing.Products,
	}, nil
}

// Create validates and records a sale.
func (s *Service) Create(ctx context.Context, input backend.SaleInput) (backend.Sale, error) {
	if err := s.validate.Struct(input); err != nil {
		return backend.Sale{}, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return s.client.CreateSale(ctx, input)
}
