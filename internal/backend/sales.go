package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SaleInput is the sale-recording payload.
type SaleInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CreateSale records a sale against current stock.
func (c *Client) CreateSale(ctx context.Context, input SaleInput) (Sale, error) {
	var out Sale
	if err := c.do(ctx, http.MethodPost, "/sales/", nil, input, &out); err != nil {
		return Sale{}, err
	}
	return out, nil
}

// ListSales returns recorded sales, newest first. Degrades to empty.
func (c *Client) ListSales(ctx context.Context, skip, limit int) []Sale {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	var out []Sale
	if err := c.do(ctx, http.MethodGet, "/sales/", q, nil, &out); err != nil {
		c.recover("/sales/", err)
		return []Sale{}
	}
	if out == nil {
		out = []Sale{}
	}
	return out
}
