package sales

import (
	"fmt"
	"time"

	"github.com/stockdeck/stockdeck/internal/backend"
)

// Totals are the revenue sums per time window. Today runs from local
// midnight to now; week and month are rolling 7- and 30-day windows. Both
// window edges are inclusive, so a sale stamped exactly at a boundary
// instant lands in the bucket. AllTime is unconditional; only the windowed
// buckets exclude future-dated sales.
type Totals struct {
	Today   float64 `json:"today"`
	Week    float64 `json:"week"`
	Month   float64 `json:"month"`
	AllTime float64 `json:"total"`
}

// WindowTotals buckets sales by sale date relative to now.
func WindowTotals(sales []backend.Sale, now time.Time) Totals {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.Add(-7 * 24 * time.Hour)
	monthStart := now.Add(-30 * 24 * time.Hour)

	var totals Totals
	for _, sale := range sales {
		t := sale.SaleDate
		totals.AllTime += sale.TotalAmount
		if t.After(now) {
			continue
		}
		if !t.Before(todayStart) {
			totals.Today += sale.TotalAmount
		}
		if !t.Before(weekStart) {
			totals.Week += sale.TotalAmount
		}
		if !t.Before(monthStart) {
			totals.Month += sale.TotalAmount
		}
	}
	return totals
}

// Row pairs a sale with its resolved product name for display.
type Row struct {
	backend.Sale
	ProductName string `json:"product_name"`
}

// ResolveNames joins sales to product names; unknown products fall back to
// a placeholder built from the id.
func ResolveNames(sales []backend.Sale, products []backend.Product) []Row {
	byID := make(map[int64]string, len(products))
	for _, p := range products {
		byID[p.ID] = p.Name
	}
	rows := make([]Row, 0, len(sales))
	for _, sale := range sales {
		name, ok := byID[sale.ProductID]
		if !ok {
			name = fmt.Sprintf("Product #%d", sale.ProductID)
		}
		rows = append(rows, Row{Sale: sale, ProductName: name})
	}
	return rows
}
