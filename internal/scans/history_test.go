package scans

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
)

func TestRecordPrependsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, kv.NewMemoryStore(), nil)

	_, err := h.Record(ctx, backend.BarcodeProduct{Barcode: "A", Name: "first"})
	require.NoError(t, err)
	_, err = h.Record(ctx, backend.BarcodeProduct{Barcode: "B", Name: "second"})
	require.NoError(t, err)

	entries := h.Load()
	require.Len(t, entries, 2)
	require.Equal(t, "B", entries[0].Barcode)
	require.Equal(t, "A", entries[1].Barcode)
}

func TestCapKeepsTenMostRecent(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, kv.NewMemoryStore(), nil)

	for i := 1; i <= 12; i++ {
		_, err := h.Record(ctx, backend.BarcodeProduct{Barcode: fmt.Sprintf("code-%02d", i)})
		require.NoError(t, err)
	}

	entries := h.Load()
	require.Len(t, entries, MaxEntries)
	require.Equal(t, "code-12", entries[0].Barcode)
	require.Equal(t, "code-03", entries[9].Barcode)
}

func TestRepeatedScansAreNotDeduplicated(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(ctx, kv.NewMemoryStore(), nil)

	for i := 0; i < 3; i++ {
		_, err := h.Record(ctx, backend.BarcodeProduct{Barcode: "SAME"})
		require.NoError(t, err)
	}
	require.Len(t, h.Load(), 3)
}

func TestHistorySurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	h := NewHistory(ctx, store, nil)
	h.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	_, err := h.Record(ctx, backend.BarcodeProduct{Barcode: "A", Name: "Desk Lamp", Stock: 4})
	require.NoError(t, err)

	reloaded := NewHistory(ctx, store, nil)
	entries := reloaded.Load()
	require.Len(t, entries, 1)
	require.Equal(t, "Desk Lamp", entries[0].Name)
	require.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), entries[0].ScannedAt)
}

func TestMalformedPersistedHistoryStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "recent_scans", "[broken"))

	h := NewHistory(ctx, store, nil)
	require.Empty(t, h.Load())
}
