// Package scanner drives the barcode scanner page: barcode lookup with a
// persisted recent-scan list, quick sales against the looked-up product,
// barcode generation and inventory checks.
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
	"github.com/stockdeck/stockdeck/internal/scans"
)

// BackendPort describes the backend calls this page issues.
type BackendPort interface {
	SearchBarcode(ctx context.Context, barcode string) (backend.BarcodeProduct, error)
	GenerateBarcode(ctx context.Context, productID int64) (backend.GeneratedBarcode, error)
	QuickSale(ctx context.Context, barcode string, quantity int) (backend.QuickSaleResult, error)
	InventoryCheck(ctx context.Context, barcode string) (backend.InventoryCheck, error)
}

// ScanResult is the product behind a scanned code plus the refreshed
// recent-scan list.
type ScanResult struct {
	Product backend.BarcodeProduct `json:"product"`
	Recent  []scans.Record         `json:"recent_scans"`
}

// SaleOutcome reports a quick sale plus the product's stock as known after
// it, updated locally from the sale response without a refetch.
type SaleOutcome struct {
	backend.QuickSaleResult
	Product *backend.BarcodeProduct `json:"product,omitempty"`
}

// Service orchestrates the scanner page. It remembers the last looked-up
// product so quick sales can be sanity-checked against the stock the
// operator is looking at.
type Service struct {
	client  BackendPort
	history *scans.History
	logger  *slog.Logger

	mu      sync.Mutex
	current *backend.BarcodeProduct
}

// NewService wires the scanner page.
func NewService(client BackendPort, history *scans.History, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, history: history, logger: logger}
}

// Scan looks up a barcode. A hit is recorded in the scan history and
// becomes the current product; a miss propagates the backend's not-found.
func (s *Service) Scan(ctx context.Context, barcode string) (ScanResult, error) {
	product, err := s.client.SearchBarcode(ctx, barcode)
	if err != nil {
		return ScanResult{}, err
	}

	if _, err := s.history.Record(ctx, product); err != nil {
		s.logger.Warn("persist scan history", slog.Any("error", err))
	}

	s.mu.Lock()
	s.current = &product
	s.mu.Unlock()

	return ScanResult{Product: product, Recent: s.history.Load()}, nil
}

// QuickSale sells quantity units of the scanned barcode. When the barcode
// matches the current product, a quantity beyond its displayed stock is
// refused before any network call, and on success the displayed stock is
// set from the sale's remaining count rather than refetched.
func (s *Service) QuickSale(ctx context.Context, barcode string, quantity int) (SaleOutcome, error) {
	if quantity <= 0 {
		return SaleOutcome{}, fmt.Errorf("%w: quantity must be positive", httpx.ErrValidation)
	}

	s.mu.Lock()
	if s.current != nil && s.current.Barcode == barcode && quantity > s.current.Stock {
		stock := s.current.Stock
		s.mu.Unlock()
		return SaleOutcome{}, fmt.Errorf("%w: quantity %d exceeds available stock %d", httpx.ErrValidation, quantity, stock)
	}
	s.mu.Unlock()

	result, err := s.client.QuickSale(ctx, barcode, quantity)
	if err != nil {
		return SaleOutcome{}, err
	}

	outcome := SaleOutcome{QuickSaleResult: result}
	s.mu.Lock()
	if s.current != nil && s.current.Barcode == barcode {
		s.current.Stock = result.RemainingStock
		updated := *s.current
		outcome.Product = &updated
	}
	s.mu.Unlock()
	return outcome, nil
}

// Generate assigns a barcode and SKU to a product.
func (s *Service) Generate(ctx context.Context, productID int64) (backend.GeneratedBarcode, error) {
	return s.client.GenerateBarcode(ctx, productID)
}

// InventoryCheck returns the stock position behind a barcode.
func (s *Service) InventoryCheck(ctx context.Context, barcode string) (backend.InventoryCheck, error) {
	return s.client.InventoryCheck(ctx, barcode)
}

// Recent returns the remembered scans, most recent first.
func (s *Service) Recent() []scans.Record {
	return s.history.Load()
}
