// Package scans keeps the most recent barcode lookups for quick re-access.
// The list is most-recent-first, capped at ten entries, persisted on every
// scan, and never expires by time. Repeated scans of the same code are not
// deduplicated; each lookup creates a new leading entry.
package scans

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
)

const historyKey = "recent_scans"

// MaxEntries bounds history growth.
const MaxEntries = 10

// Record is one remembered barcode lookup.
type Record struct {
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	ScannedAt time.Time `json:"scannedAt"`
}

// History is the bounded scan list.
type History struct {
	kv     kv.Store
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries []Record
}

// NewHistory loads the persisted list; a missing or malformed list starts
// empty.
func NewHistory(ctx context.Context, store kv.Store, logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	h := &History{kv: store, logger: logger, now: time.Now}

	raw, err := store.Get(ctx, historyKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			logger.Warn("load scan history", slog.Any("error", err))
		}
		return h
	}
	if jsonErr := json.Unmarshal([]byte(raw), &h.entries); jsonErr != nil {
		logger.Warn("persisted scan history malformed, starting empty", slog.Any("error", jsonErr))
		h.entries = nil
	}
	return h
}

// Record prepends a lookup result, truncates to the cap, and persists.
func (h *History) Record(ctx context.Context, product backend.BarcodeProduct) (Record, error) {
	entry := Record{
		Barcode:   product.Barcode,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Stock:     product.Stock,
		ScannedAt: h.now(),
	}

	h.mu.Lock()
	updated := make([]Record, 0, MaxEntries)
	updated = append(updated, entry)
	for _, prev := range h.entries {
		if len(updated) == MaxEntries {
			break
		}
		updated = append(updated, prev)
	}
	h.entries = updated
	snapshot := append([]Record(nil), updated...)
	h.mu.Unlock()

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return entry, err
	}
	if err := h.kv.Set(ctx, historyKey, string(payload)); err != nil {
		return entry, err
	}
	return entry, nil
}

// Load returns the remembered scans, most recent first.
func (h *History) Load() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.entries == nil {
		return []Record{}
	}
	return append([]Record(nil), h.entries...)
}
