// Package restock derives the urgent-restock list shown on the dashboard
// and analytics pages. The merge is a pure function of its inputs and is
// recomputed from scratch on every fetch cycle.
package restock

import (
	"sort"

	"github.com/stockdeck/stockdeck/internal/backend"
)

// UrgentThresholdDays is the forecast horizon below which a predicted
// stockout counts as urgent.
const UrgentThresholdDays = 14

// ConfidenceImmediate tags entries synthesised from the low-stock list for
// products the forecaster has not scored yet.
const ConfidenceImmediate = "immediate"

// Merge unions urgent predictions with currently low-stock products, keyed
// by product id. Predictions win; a low-stock product without one gets a
// synthesised entry with zero days until stockout. A product present in
// both lists is never counted twice, and re-applying the merge to its own
// output adds nothing.
func Merge(predictions []backend.Prediction, lowStock []backend.Product) []backend.Prediction {
	merged := make([]backend.Prediction, 0, len(predictions)+len(lowStock))
	seen := make(map[int64]struct{}, len(predictions)+len(lowStock))

	for _, p := range predictions {
		if p.DaysUntilStockout == nil || *p.DaysUntilStockout >= UrgentThresholdDays {
			continue
		}
		if _, ok := seen[p.ProductID]; ok {
			continue
		}
		seen[p.ProductID] = struct{}{}
		merged = append(merged, p)
	}

	for _, product := range lowStock {
		if !product.LowStock() {
			continue
		}
		if _, ok := seen[product.ID]; ok {
			continue
		}
		seen[product.ID] = struct{}{}
		zero := 0.0
		merged = append(merged, backend.Prediction{
			ProductID:          product.ID,
			ProductName:        product.Name,
			CurrentStock:       product.Stock,
			DaysUntilStockout:  &zero,
			Confidence:         ConfidenceImmediate,
			ReorderRecommended: true,
		})
	}

	return merged
}

// Cap truncates the merged list to at most n entries.
func Cap(items []backend.Prediction, n int) []backend.Prediction {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// SortAscending orders entries by days until stockout, soonest first.
// The sort is stable so equal forecasts keep their merge order.
func SortAscending(items []backend.Prediction) []backend.Prediction {
	out := append([]backend.Prediction(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return days(out[i]) < days(out[j])
	})
	return out
}

func days(p backend.Prediction) float64 {
	if p.DaysUntilStockout == nil {
		return UrgentThresholdDays
	}
	return *p.DaysUntilStockout
}
