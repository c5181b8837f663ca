package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// RevenueForecast projects revenue over the next days window.
func (c *Client) RevenueForecast(ctx context.Context, days int) (RevenueForecast, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	var out RevenueForecast
	if err := c.do(ctx, http.MethodGet, "/advanced-analytics/revenue-forecast", q, nil, &out); err != nil {
		return RevenueForecast{}, err
	}
	return out, nil
}

// SeasonalTrends returns monthly and weekday sales patterns.
func (c *Client) SeasonalTrends(ctx context.Context) (SeasonalTrends, error) {
	var out SeasonalTrends
	if err := c.do(ctx, http.MethodGet, "/advanced-analytics/seasonal-trends", nil, nil, &out); err != nil {
		return SeasonalTrends{}, err
	}
	return out, nil
}

// CategoryPerformance compares recent results across categories.
// Degrades to empty.
func (c *Client) CategoryPerformance(ctx context.Context) []CategoryPerformance {
	var out []CategoryPerformance
	if err := c.do(ctx, http.MethodGet, "/advanced-analytics/category-performance", nil, nil, &out); err != nil {
		c.recover("/advanced-analytics/category-performance", err)
		return []CategoryPerformance{}
	}
	if out == nil {
		out = []CategoryPerformance{}
	}
	return out
}

// Anomalies lists unusual sales observations. Degrades to empty.
func (c *Client) Anomalies(ctx context.Context) []Anomaly {
	var out []Anomaly
	if err := c.do(ctx, http.MethodGet, "/advanced-analytics/anomaly-detection", nil, nil, &out); err != nil {
		c.recover("/advanced-analytics/anomaly-detection", err)
		return []Anomaly{}
	}
	if out == nil {
		out = []Anomaly{}
	}
	return out
}

// DemandForecast projects unit demand for one product.
func (c *Client) DemandForecast(ctx context.Context, productID int64, days int) (DemandForecast, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	path := fmt.Sprintf("/advanced-analytics/demand-forecast/%d", productID)
	var out DemandForecast
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return DemandForecast{}, err
	}
	return out, nil
}

// PriceOptimization suggests pricing for one product.
func (c *Client) PriceOptimization(ctx context.Context, productID int64) (PriceOptimization, error) {
	path := fmt.Sprintf("/advanced-analytics/price-optimization/%d", productID)
	var out PriceOptimization
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return PriceOptimization{}, err
	}
	return out, nil
}
