package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/dashboard"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
	"github.com/stockdeck/stockdeck/internal/prefs"
)

type stubBackend struct {
	loads int
}

func (s *stubBackend) ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage {
	s.loads++
	return backend.ProductPage{Page: page, PerPage: perPage, Products: []backend.Product{}}
}

func (s *stubBackend) AllPredictions(ctx context.Context) []backend.Prediction {
	return []backend.Prediction{}
}

func (s *stubBackend) TopSelling(ctx context.Context, limit, days int) []backend.TopSeller {
	return []backend.TopSeller{}
}

func (s *stubBackend) LowStockProducts(ctx context.Context) []backend.Product {
	return []backend.Product{}
}

func (s *stubBackend) GetDashboardStats(ctx context.Context) backend.DashboardStats {
	return backend.DashboardStats{TotalProducts: 3, Categories: []string{}}
}

func (s *stubBackend) CreateProduct(ctx context.Context, input backend.ProductInput) (backend.Product, error) {
	return backend.Product{}, nil
}

func newRefresher(t *testing.T, autoRefresh bool) (*Refresher, kv.Store, *stubBackend) {
	t.Helper()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	preferences := prefs.NewStore(ctx, store, nil)
	_, err := preferences.Update(ctx, prefs.Partial{AutoRefresh: &autoRefresh})
	require.NoError(t, err)

	stub := &stubBackend{}
	svc := dashboard.NewService(stub, nil)
	return NewRefresher(svc, preferences, store, nil), store, stub
}

func TestRefreshSkipsWhenAutoRefreshOff(t *testing.T) {
	refresher, store, stub := newRefresher(t, false)

	require.NoError(t, refresher.HandleDashboardRefresh(context.Background(), NewDashboardRefreshTask()))
	require.Zero(t, stub.loads)
	_, err := store.Get(context.Background(), SnapshotKey)
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestRefreshPersistsSnapshot(t *testing.T) {
	refresher, store, stub := newRefresher(t, true)

	require.NoError(t, refresher.HandleDashboardRefresh(context.Background(), NewDashboardRefreshTask()))
	require.Equal(t, 1, stub.loads)

	snap, err := LoadSnapshot(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, 3, snap.View.Stats.TotalProducts)
	require.WithinDuration(t, time.Now(), snap.GeneratedAt, time.Minute)
}

func TestRefreshSkipsFreshSnapshot(t *testing.T) {
	refresher, _, stub := newRefresher(t, true)

	require.NoError(t, refresher.HandleDashboardRefresh(context.Background(), NewDashboardRefreshTask()))
	require.NoError(t, refresher.HandleDashboardRefresh(context.Background(), NewDashboardRefreshTask()))
	require.Equal(t, 1, stub.loads)
}

func TestRefreshSeesPreferencesWrittenByAnotherProcess(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	// The worker builds its preference store first, before any writes.
	workerPrefs := prefs.NewStore(ctx, store, nil)
	stub := &stubBackend{}
	refresher := NewRefresher(dashboard.NewService(stub, nil), workerPrefs, store, nil)

	// The gateway then enables auto-refresh through its own store instance.
	gatewayPrefs := prefs.NewStore(ctx, store, nil)
	on := true
	_, err := gatewayPrefs.Update(ctx, prefs.Partial{AutoRefresh: &on})
	require.NoError(t, err)

	require.NoError(t, refresher.HandleDashboardRefresh(ctx, NewDashboardRefreshTask()))
	require.Equal(t, 1, stub.loads)
	_, err = LoadSnapshot(ctx, store)
	require.NoError(t, err)

	// Turning it back off must stop the next run, too.
	off := false
	_, err = gatewayPrefs.Update(ctx, prefs.Partial{AutoRefresh: &off})
	require.NoError(t, err)
	refresher.now = func() time.Time { return time.Now().Add(time.Hour) }
	require.NoError(t, refresher.HandleDashboardRefresh(ctx, NewDashboardRefreshTask()))
	require.Equal(t, 1, stub.loads)
}

func TestRefreshRebuildsStaleSnapshot(t *testing.T) {
	refresher, _, stub := newRefresher(t, true)

	require.NoError(t, refresher.HandleDashboardRefresh(context.Background(), NewDashboardRefreshTask()))

	refresher.now = func() time.Time { return time.Now().Add(time.Hour) }
	require.NoError(t, refresher.HandleDashboardRefresh(context.Background(), NewDashboardRefreshTask()))
	require.Equal(t, 2, stub.loads)
}
