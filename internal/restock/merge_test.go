package restock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockdeck/stockdeck/internal/backend"
)

func fptr(v float64) *float64 { return &v }

func TestMergeFiltersByThreshold(t *testing.T) {
	preds := []backend.Prediction{
		{ProductID: 1, DaysUntilStockout: fptr(3)},
		{ProductID: 2, DaysUntilStockout: fptr(14)},
		{ProductID: 3, DaysUntilStockout: nil},
		{ProductID: 4, DaysUntilStockout: fptr(13.9)},
	}

	merged := Merge(preds, nil)
	require.Len(t, merged, 2)
	require.Equal(t, int64(1), merged[0].ProductID)
	require.Equal(t, int64(4), merged[1].ProductID)
}

func TestMergeNeverDoubleCountsProduct(t *testing.T) {
	preds := []backend.Prediction{
		{ProductID: 5, ProductName: "Screws", CurrentStock: 2, DaysUntilStockout: fptr(4), Confidence: "high"},
	}
	low := []backend.Product{
		{ID: 5, Name: "Screws", Stock: 2, ReorderLevel: 10},
		{ID: 6, Name: "Nails", Stock: 1, ReorderLevel: 5},
	}

	merged := Merge(preds, low)
	require.Len(t, merged, 2)

	// Product 5 keeps its real prediction.
	require.Equal(t, "high", merged[0].Confidence)

	// Product 6 gets a synthesised immediate entry.
	require.Equal(t, int64(6), merged[1].ProductID)
	require.Equal(t, ConfidenceImmediate, merged[1].Confidence)
	require.NotNil(t, merged[1].DaysUntilStockout)
	require.Zero(t, *merged[1].DaysUntilStockout)
	require.True(t, merged[1].ReorderRecommended)
}

func TestMergeIsIdempotent(t *testing.T) {
	preds := []backend.Prediction{
		{ProductID: 1, DaysUntilStockout: fptr(2)},
	}
	low := []backend.Product{
		{ID: 2, Stock: 0, ReorderLevel: 3},
	}

	once := Merge(preds, low)
	again := Merge(once, low)
	require.Equal(t, once, again)
}

func TestMergeIgnoresNotActuallyLowProducts(t *testing.T) {
	low := []backend.Product{
		{ID: 9, Stock: 20, ReorderLevel: 10},
	}
	require.Empty(t, Merge(nil, low))
}

func TestCap(t *testing.T) {
	items := make([]backend.Prediction, 7)
	require.Len(t, Cap(items, 5), 5)
	require.Len(t, Cap(items[:3], 5), 3)
}

func TestSortAscending(t *testing.T) {
	items := []backend.Prediction{
		{ProductID: 1, DaysUntilStockout: fptr(9)},
		{ProductID: 2, DaysUntilStockout: fptr(0)},
		{ProductID: 3, DaysUntilStockout: fptr(4.5)},
	}

	sorted := SortAscending(items)
	require.Equal(t, int64(2), sorted[0].ProductID)
	require.Equal(t, int64(3), sorted[1].ProductID)
	require.Equal(t, int64(1), sorted[2].ProductID)

	// Input order is untouched.
	require.Equal(t, int64(1), items[0].ProductID)
}
