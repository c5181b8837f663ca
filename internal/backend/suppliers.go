package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// SupplierInput is the supplier creation payload.
type SupplierInput struct {
	Name          string `json:"name" validate:"required,min=2,max=200"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
}

// PurchaseOrderInput is the purchase order creation payload. TotalCost is
// computed client-side as quantity times unit cost.
type PurchaseOrderInput struct {
	SupplierID       int64      `json:"supplier_id" validate:"required,gt=0"`
	ProductID        int64      `json:"product_id" validate:"required,gt=0"`
	Quantity         int        `json:"quantity" validate:"required,gt=0"`
	UnitCost         float64    `json:"unit_cost" validate:"required,gt=0"`
	ExpectedDelivery *time.Time `json:"expected_delivery,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

type orderStatusInput struct {
	Status string `json:"status"`
}

// ListSuppliers returns all suppliers. Degrades to empty.
func (c *Client) ListSuppliers(ctx context.Context) []Supplier {
	var out []Supplier
	if err := c.do(ctx, http.MethodGet, "/suppliers/", nil, nil, &out); err != nil {
		c.recover("/suppliers/", err)
		return []Supplier{}
	}
	if out == nil {
		out = []Supplier{}
	}
	return out
}

// CreateSupplier registers a supplier.
func (c *Client) CreateSupplier(ctx context.Context, input SupplierInput) (Supplier, error) {
	var out Supplier
	if err := c.do(ctx, http.MethodPost, "/suppliers/", nil, input, &out); err != nil {
		return Supplier{}, err
	}
	return out, nil
}

// DeleteSupplier removes a supplier.
func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/suppliers/%d", id), nil, nil, nil)
}

// ListPurchaseOrders returns purchase orders, newest first. Degrades to empty.
func (c *Client) ListPurchaseOrders(ctx context.Context) []PurchaseOrder {
	var out []PurchaseOrder
	if err := c.do(ctx, http.MethodGet, "/suppliers/purchase-orders", nil, nil, &out); err != nil {
		c.recover("/suppliers/purchase-orders", err)
		return []PurchaseOrder{}
	}
	if out == nil {
		out = []PurchaseOrder{}
	}
	return out
}

// CreatePurchaseOrder places an order with a supplier.
func (c *Client) CreatePurchaseOrder(ctx context.Context, input PurchaseOrderInput) (PurchaseOrder, error) {
	var out PurchaseOrder
	if err := c.do(ctx, http.MethodPost, "/suppliers/purchase-orders", nil, input, &out); err != nil {
		return PurchaseOrder{}, err
	}
	return out, nil
}

// UpdateOrderStatus transitions a purchase order. Marking an order
// delivered makes the backend receive the stock.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (PurchaseOrder, error) {
	var out PurchaseOrder
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/suppliers/purchase-orders/%d", orderID), nil, orderStatusInput{Status: status}, &out); err != nil {
		return PurchaseOrder{}, err
	}
	return out, nil
}

// SupplierPerformance returns the delivery scorecard for one supplier.
func (c *Client) SupplierPerformance(ctx context.Context, supplierID int64) (SupplierPerformance, error) {
	var out SupplierPerformance
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/suppliers/performance/%d", supplierID), nil, nil, &out); err != nil {
		return SupplierPerformance{}, err
	}
	return out, nil
}
