package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockdeck/stockdeck/internal/backend"
)

type mockBackend struct {
	stats       backend.DashboardStats
	top         []backend.TopSeller
	lowStock    []backend.Product
	predictions []backend.Prediction
	listing     backend.ProductPage
	history     []backend.StockHistoryEntry
	gotLimit    int
	gotDays     int
	gotHistDays int
}

func (m *mockBackend) GetDashboardStats(ctx context.Context) backend.DashboardStats {
	return m.stats
}

func (m *mockBackend) TopSelling(ctx context.Context, limit, days int) []backend.TopSeller {
	m.gotLimit, m.gotDays = limit, days
	return m.top
}

func (m *mockBackend) LowStockProducts(ctx context.Context) []backend.Product {
	return m.lowStock
}

func (m *mockBackend) AllPredictions(ctx context.Context) []backend.Prediction {
	return m.predictions
}

func (m *mockBackend) ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage {
	return m.listing
}

func (m *mockBackend) StockHistory(ctx context.Context, productID int64, days int) []backend.StockHistoryEntry {
	m.gotHistDays = days
	return m.history
}

func (m *mockBackend) GetPrediction(ctx context.Context, productID int64) (backend.Prediction, error) {
	return backend.Prediction{ProductID: productID}, nil
}

func TestCategoryTotalsKeepsFirstSeenOrder(t *testing.T) {
	totals := CategoryTotals([]backend.Product{
		{ID: 1, Category: "A", Stock: 4},
		{ID: 2, Category: "B", Stock: 3},
		{ID: 3, Category: "A", Stock: 3},
	})

	require.Equal(t, []CategoryTotal{{Name: "A", Value: 7}, {Name: "B", Value: 3}}, totals)
}

func TestNormalizeRangeSnapsToSupportedWindows(t *testing.T) {
	require.Equal(t, 7, NormalizeRange(7))
	require.Equal(t, 90, NormalizeRange(90))
	require.Equal(t, DefaultRangeDays, NormalizeRange(0))
	require.Equal(t, DefaultRangeDays, NormalizeRange(45))
}

func TestLoadSortsUrgentRestocksSoonestFirst(t *testing.T) {
	d5, d2 := 5.0, 2.0
	mock := &mockBackend{
		predictions: []backend.Prediction{
			{ProductID: 1, DaysUntilStockout: &d5},
			{ProductID: 2, DaysUntilStockout: &d2},
		},
		lowStock: []backend.Product{{ID: 3, Stock: 0, ReorderLevel: 5}},
	}
	svc := NewService(mock, nil)

	view, err := svc.Load(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, view.UrgentRestocks, 3)
	require.Equal(t, int64(3), view.UrgentRestocks[0].ProductID)
	require.Equal(t, int64(2), view.UrgentRestocks[1].ProductID)
	require.Equal(t, int64(1), view.UrgentRestocks[2].ProductID)
}

func TestLoadRequestsTopTenForRange(t *testing.T) {
	mock := &mockBackend{}
	svc := NewService(mock, nil)

	view, err := svc.Load(context.Background(), 60)
	require.NoError(t, err)
	require.Equal(t, 10, mock.gotLimit)
	require.Equal(t, 60, mock.gotDays)
	require.Equal(t, 60, view.RangeDays)
}

func TestStockHistoryNormalizesDays(t *testing.T) {
	mock := &mockBackend{history: []backend.StockHistoryEntry{{ProductID: 4}}}
	svc := NewService(mock, nil)

	history := svc.StockHistory(context.Background(), 4, 123)
	require.Equal(t, DefaultRangeDays, mock.gotHistDays)
	require.Len(t, history, 1)
}
