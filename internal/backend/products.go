package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Category     string  `json:"category" validate:"required"`
	Stock        int     `json:"stock" validate:"gte=0"`
	Price        float64 `json:"price" validate:"gt=0"`
	ReorderLevel int     `json:"reorder_level" validate:"gte=0"`
}

// ListProducts returns one page of products, optionally filtered by exact
// category. Degrades to an empty page keyed to the requested page size.
func (c *Client) ListProducts(ctx context.Context, page, perPage int, category string) ProductPage {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	if category != "" {
		q.Set("category", category)
	}
	var out ProductPage
	if err := c.do(ctx, http.MethodGet, "/products/", q, nil, &out); err != nil {
		c.recover("/products/", err)
		return ProductPage{Page: 1, PerPage: perPage, Products: []Product{}}
	}
	if out.Products == nil {
		out.Products = []Product{}
	}
	return out
}

// GetProduct fetches a single product.
func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// CreateProduct registers a new product.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPost, "/products/", nil, input, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// UpdateProduct replaces a product's fields.
func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, input, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}

// RestockProduct raises a product's stock by a positive quantity delta.
// The backend takes the quantity as a query parameter.
func (c *Client) RestockProduct(ctx context.Context, id int64, quantity int) (Product, error) {
	q := url.Values{}
	q.Set("quantity", strconv.Itoa(quantity))
	var out Product
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/restock", id), q, nil, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}
