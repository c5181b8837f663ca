// Package suppliers drives the supplier management page: the supplier
// roster, purchase orders with name resolution, order placement and status
// transitions, and the per-supplier performance scorecard.
package suppliers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
)

const productFetchLimit = 100

// BackendPort describes the backend calls this page issues.
type BackendPort interface {
	ListSuppliers(ctx context.Context) []backend.Supplier
	CreateSupplier(ctx context.Context, input backend.SupplierInput) (backend.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
	ListPurchaseOrders(ctx context.Context) []backend.PurchaseOrder
	CreatePurchaseOrder(ctx context.Context, input backend.PurchaseOrderInput) (backend.PurchaseOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) (backend.PurchaseOrder, error)
	SupplierPerformance(ctx context.Context, supplierID int64) (backend.SupplierPerformance, error)
	ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage
}

// OrderRow is a purchase order with supplier and product names resolved
// for display.
type OrderRow struct {
	backend.PurchaseOrder
	SupplierName string `json:"supplier_name"`
	ProductName  string `json:"product_name"`
}

// View is the suppliers page view model.
type View struct {
	Suppliers []backend.Supplier `json:"suppliers"`
	Orders    []OrderRow         `json:"purchase_orders"`
	Products  []backend.Product  `json:"products"`
}

// Service orchestrates the suppliers page.
type Service struct {
	client   BackendPort
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService wires the suppliers page.
func NewService(client BackendPort, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger, validate: validator.New()}
}

// Load fetches suppliers, purchase orders and the product join table
// concurrently.
func (s *Service) Load(ctx context.Context) (View, error) {
	var (
		supplierList []backend.Supplier
		orders       []backend.PurchaseOrder
		listing      backend.ProductPage
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		supplierList = s.client.ListSuppliers(ctx)
		return nil
	})
	g.Go(func() error {
		orders = s.client.ListPurchaseOrders(ctx)
		return nil
	})
	g.Go(func() error {
		listing = s.client.ListProducts(ctx, 1, productFetchLimit, "")
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}

	return View{
		Suppliers: supplierList,
		Orders:    resolveOrders(orders, supplierList, listing.Products),
		Products:  listing.Products,
	}, nil
}

func resolveOrders(orders []backend.PurchaseOrder, suppliers []backend.Supplier, products []backend.Product) []OrderRow {
	supplierNames := make(map[int64]string, len(suppliers))
	for _, sup := range suppliers {
		supplierNames[sup.ID] = sup.Name
	}
	productNames := make(map[int64]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}

	rows := make([]OrderRow, 0, len(orders))
	for _, order := range orders {
		supplierName, ok := supplierNames[order.SupplierID]
		if !ok {
			supplierName = fmt.Sprintf("Supplier #%d", order.SupplierID)
		}
		productName, ok := productNames[order.ProductID]
		if !ok {
			productName = fmt.Sprintf("Product #%d", order.ProductID)
		}
		rows = append(rows, OrderRow{PurchaseOrder: order, SupplierName: supplierName, ProductName: productName})
	}
	return rows
}

// CreateSupplier validates and registers a supplier.
func (s *Service) CreateSupplier(ctx context.Context, input backend.SupplierInput) (backend.Supplier, error) {
	if err := s.validate.Struct(input); err != nil {
		return backend.Supplier{}, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return s.client.CreateSupplier(ctx, input)
}

// DeleteSupplier removes a supplier.
func (s *Service) DeleteSupplier(ctx context.Context, id int64) error {
	return s.client.DeleteSupplier(ctx, id)
}

// CreateOrder validates and places a purchase order.
func (s *Service) CreateOrder(ctx context.Context, input backend.PurchaseOrderInput) (backend.PurchaseOrder, error) {
	if err := s.validate.Struct(input); err != nil {
		return backend.PurchaseOrder{}, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return s.client.CreatePurchaseOrder(ctx, input)
}

var validStatuses = map[string]bool{
	backend.POStatusPending:   true,
	backend.POStatusApproved:  true,
	backend.POStatusOrdered:   true,
	backend.POStatusDelivered: true,
	backend.POStatusCancelled: true,
}

// UpdateOrderStatus transitions an order. Delivered and cancelled orders
// are terminal, so the transition is refused before any network call.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (backend.PurchaseOrder, error) {
	if !validStatuses[status] {
		return backend.PurchaseOrder{}, fmt.Errorf("%w: unknown order status %q", httpx.ErrValidation, status)
	}
	for _, order := range s.client.ListPurchaseOrders(ctx) {
		if order.ID == orderID && order.Terminal() {
			return backend.PurchaseOrder{}, fmt.Errorf("%w: order %d is %s", httpx.ErrInvalidState, orderID, order.Status)
		}
	}
	return s.client.UpdateOrderStatus(ctx, orderID, status)
}

// Performance returns one supplier's delivery scorecard.
func (s *Service) Performance(ctx context.Context, supplierID int64) (backend.SupplierPerformance, error) {
	return s.client.SupplierPerformance(ctx, supplierID)
}
