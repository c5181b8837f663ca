package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// LowStockProducts returns products at or below their reorder level.
// Degrades to empty.
func (c *Client) LowStockProducts(ctx context.Context) []Product {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/analytics/low-stock", nil, nil, &out); err != nil {
		c.recover("/analytics/low-stock", err)
		return []Product{}
	}
	if out == nil {
		out = []Product{}
	}
	return out
}

// TopSelling returns the best sellers within a rolling day window.
// Degrades to empty.
func (c *Client) TopSelling(ctx context.Context, limit, days int) []TopSeller {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("days", strconv.Itoa(days))
	var out []TopSeller
	if err := c.do(ctx, http.MethodGet, "/analytics/top-selling", q, nil, &out); err != nil {
		c.recover("/analytics/top-selling", err)
		return []TopSeller{}
	}
	if out == nil {
		out = []TopSeller{}
	}
	return out
}

// StockHistory returns a product's stock timeline over a lookback window.
// Degrades to empty.
func (c *Client) StockHistory(ctx context.Context, productID int64, days int) []StockHistoryEntry {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	path := fmt.Sprintf("/analytics/stock-history/%d", productID)
	var out []StockHistoryEntry
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		c.recover(path, err)
		return []StockHistoryEntry{}
	}
	if out == nil {
		out = []StockHistoryEntry{}
	}
	return out
}

// GetDashboardStats returns the aggregate dashboard summary.
// Degrades to a zero summary with no categories.
func (c *Client) GetDashboardStats(ctx context.Context) DashboardStats {
	var out DashboardStats
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard-stats", nil, nil, &out); err != nil {
		c.recover("/analytics/dashboard-stats", err)
		return DashboardStats{Categories: []string{}}
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	return out
}

// GetPrediction fetches the stockout forecast for one product.
func (c *Client) GetPrediction(ctx context.Context, productID int64) (Prediction, error) {
	var out Prediction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/analytics/predictions/%d", productID), nil, nil, &out); err != nil {
		return Prediction{}, err
	}
	return out, nil
}

// AllPredictions fetches stockout forecasts for every product.
// Degrades to empty.
func (c *Client) AllPredictions(ctx context.Context) []Prediction {
	var out []Prediction
	if err := c.do(ctx, http.MethodGet, "/analytics/predictions/", nil, nil, &out); err != nil {
		c.recover("/analytics/predictions/", err)
		return []Prediction{}
	}
	if out == nil {
		out = []Prediction{}
	}
	return out
}
