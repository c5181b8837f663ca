// Package products drives the product management page: a paginated listing
// with category filter and client-side search, plus the product CRUD and
// restock actions.
package products

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
	"github.com/stockdeck/stockdeck/internal/shared"
)

// PageSize is the fixed product listing page size.
const PageSize = 15

// BackendPort describes the backend calls this page issues.
type BackendPort interface {
	ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage
	GetDashboardStats(ctx context.Context) backend.DashboardStats
	CreateProduct(ctx context.Context, input backend.ProductInput) (backend.Product, error)
	UpdateProduct(ctx context.Context, id int64, input backend.ProductInput) (backend.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	RestockProduct(ctx context.Context, id int64, quantity int) (backend.Product, error)
}

// View is the products page view model. Pagination reflects the unfiltered
// listing; Products carries the search-filtered slice of the loaded page.
type View struct {
	Products   []backend.Product `json:"products"`
	Pagination shared.Pagination `json:"pagination"`
	Categories []string          `json:"categories"`
	Search     string            `json:"search,omitempty"`
	Category   string            `json:"category,omitempty"`
}

// Service orchestrates the products page.
type Service struct {
	client   BackendPort
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService wires the products page.
func NewService(client BackendPort, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger, validate: validator.New()}
}

// Load fetches one listing page and the category list concurrently, then
// applies the client-side search filter to the loaded page only. A page
// beyond the end of the listing is clamped and refetched, so the returned
// products always belong to the page the metadata reports.
func (s *Service) Load(ctx context.Context, page int, category, search string) (View, error) {
	if page < 1 {
		page = 1
	}

	var (
		listing backend.ProductPage
		stats   backend.DashboardStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listing = s.client.ListProducts(gctx, page, PageSize, category)
		return nil
	})
	g.Go(func() error {
		stats = s.client.GetDashboardStats(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}

	pagination := shared.NewPagination(page, PageSize, listing.Total)
	if pagination.Page != page {
		listing = s.client.ListProducts(ctx, pagination.Page, PageSize, category)
	}

	return View{
		Products:   Filter(listing.Products, search),
		Pagination: pagination,
		Categories: stats.Categories,
		Search:     search,
		Category:   category,
	}, nil
}

// Create validates and registers a product.
func (s *Service) Create(ctx context.Context, input backend.ProductInput) (backend.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return backend.Product{}, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return s.client.CreateProduct(ctx, input)
}

// Update validates and replaces a product's fields.
func (s *Service) Update(ctx context.Context, id int64, input backend.ProductInput) (backend.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return backend.Product{}, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return s.client.UpdateProduct(ctx, id, input)
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteProduct(ctx, id)
}

// Restock raises stock by a positive quantity delta.
func (s *Service) Restock(ctx context.Context, id int64, quantity int) (backend.Product, error) {
	if quantity <= 0 {
		return backend.Product{}, fmt.Errorf("%w: restock quantity must be positive", httpx.ErrValidation)
	}
	return s.client.RestockProduct(ctx, id, quantity)
}
