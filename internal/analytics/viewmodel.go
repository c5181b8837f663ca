package analytics

import "github.com/stockdeck/stockdeck/internal/backend"

// CategoryTotal is one slice of the stock-by-category distribution.
type CategoryTotal struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CategoryTotals sums stock units per category, keeping categories in
// first-seen order so the chart layout is stable across refreshes.
func CategoryTotals(products []backend.Product) []CategoryTotal {
	index := make(map[string]int, len(products))
	totals := make([]CategoryTotal, 0, len(products))
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(totals)
			index[p.Category] = i
			totals = append(totals, CategoryTotal{Name: p.Category})
		}
		totals[i].Value += p.Stock
	}
	return totals
}
