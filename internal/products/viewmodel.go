package products

import (
	"strings"

	"github.com/stockdeck/stockdeck/internal/backend"
)

// Filter returns the products whose name or category contains term,
// case-insensitively. It only ever sees the currently loaded page; the
// search is not server-side and does not change pagination totals.
func Filter(products []backend.Product, term string) []backend.Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	out := make([]backend.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}
