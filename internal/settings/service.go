// Package settings drives the settings page: theme and display preferences,
// the backend health summary, inventory export and local cache clearing.
package settings

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
	"github.com/stockdeck/stockdeck/internal/prefs"
)

// The export pulls one deep page so the file covers the full catalogue.
const exportFetchLimit = 1000

// BackendPort describes the backend calls this page issues.
type BackendPort interface {
	GetDashboardStats(ctx context.Context) backend.DashboardStats
	ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage
	Health(ctx context.Context) bool
}

// View is the settings page view model.
type View struct {
	Theme       string                 `json:"theme"`
	Preferences prefs.Preferences      `json:"preferences"`
	Stats       backend.DashboardStats `json:"stats"`
	BackendUp   bool                   `json:"backend_up"`
}

// Service orchestrates the settings page.
type Service struct {
	client BackendPort
	prefs  *prefs.Store
	kv     kv.Store
	logger *slog.Logger
}

// NewService wires the settings page.
func NewService(client BackendPort, preferences *prefs.Store, store kv.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, prefs: preferences, kv: store, logger: logger}
}

// Load returns current preferences alongside backend health and stats.
func (s *Service) Load(ctx context.Context) View {
	return View{
		Theme:       s.prefs.Theme(),
		Preferences: s.prefs.Get(),
		Stats:       s.client.GetDashboardStats(ctx),
		BackendUp:   s.client.Health(ctx),
	}
}

// UpdatePreferences shallow-merges a partial update.
func (s *Service) UpdatePreferences(ctx context.Context, partial prefs.Partial) (prefs.Preferences, error) {
	return s.prefs.Update(ctx, partial)
}

// ToggleTheme flips between light and dark.
func (s *Service) ToggleTheme(ctx context.Context) (string, error) {
	return s.prefs.ToggleTheme(ctx)
}

// ExportJSON renders the product catalogue as an indented JSON document.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	listing := s.client.ListProducts(ctx, 1, exportFetchLimit, "")
	return json.MarshalIndent(listing.Products, "", "  ")
}

// ExportCSV renders the product catalogue as CSV.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	listing := s.client.ListProducts(ctx, 1, exportFetchLimit, "")

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID", "Name", "Category", "Stock", "Price", "Reorder Level"}); err != nil {
		return nil, err
	}
	for _, p := range listing.Products {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Category,
			strconv.Itoa(p.Stock),
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.ReorderLevel),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ClearCache wipes everything the gateway has persisted locally. The next
// startup comes back with default preferences and an empty scan history.
func (s *Service) ClearCache(ctx context.Context) error {
	return s.kv.Clear(ctx)
}
