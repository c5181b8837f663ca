package suppliers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
)

type mockBackend struct {
	suppliers     []backend.Supplier
	orders        []backend.PurchaseOrder
	listing       backend.ProductPage
	created       []backend.SupplierInput
	createdOrders []backend.PurchaseOrderInput
	transitions   map[int64]string
}

func (m *mockBackend) ListSuppliers(ctx context.Context) []backend.Supplier { return m.suppliers }

func (m *mockBackend) CreateSupplier(ctx context.Context, input backend.SupplierInput) (backend.Supplier, error) {
	m.created = append(m.created, input)
	return backend.Supplier{ID: 1, Name: input.Name}, nil
}

func (m *mockBackend) DeleteSupplier(ctx context.Context, id int64) error { return nil }

func (m *mockBackend) ListPurchaseOrders(ctx context.Context) []backend.PurchaseOrder {
	return m.orders
}

func (m *mockBackend) CreatePurchaseOrder(ctx context.Context, input backend.PurchaseOrderInput) (backend.PurchaseOrder, error) {
	m.createdOrders = append(m.createdOrders, input)
	return backend.PurchaseOrder{ID: 9, SupplierID: input.SupplierID, TotalCost: float64(input.Quantity) * input.UnitCost}, nil
}

func (m *mockBackend) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (backend.PurchaseOrder, error) {
	if m.transitions == nil {
		m.transitions = make(map[int64]string)
	}
	m.transitions[orderID] = status
	return backend.PurchaseOrder{ID: orderID, Status: status}, nil
}

func (m *mockBackend) SupplierPerformance(ctx context.Context, supplierID int64) (backend.SupplierPerformance, error) {
	return backend.SupplierPerformance{SupplierID: supplierID, OnTimeDeliveryRate: 0.9}, nil
}

func (m *mockBackend) ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage {
	return m.listing
}

func TestLoadResolvesOrderNames(t *testing.T) {
	mock := &mockBackend{
		suppliers: []backend.Supplier{{ID: 1, Name: "Acme Supplies"}},
		orders: []backend.PurchaseOrder{
			{ID: 10, SupplierID: 1, ProductID: 2},
			{ID: 11, SupplierID: 7, ProductID: 99},
		},
		listing: backend.ProductPage{Products: []backend.Product{{ID: 2, Name: "Desk Lamp"}}},
	}
	svc := NewService(mock, nil)

	view, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Acme Supplies", view.Orders[0].SupplierName)
	require.Equal(t, "Desk Lamp", view.Orders[0].ProductName)
	require.Equal(t, "Supplier #7", view.Orders[1].SupplierName)
	require.Equal(t, "Product #99", view.Orders[1].ProductName)
}

func TestCreateSupplierValidatesBeforeNetwork(t *testing.T) {
	mock := &mockBackend{}
	svc := NewService(mock, nil)

	_, err := svc.CreateSupplier(context.Background(), backend.SupplierInput{Name: "A"})
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Empty(t, mock.created)

	_, err = svc.CreateSupplier(context.Background(), backend.SupplierInput{Name: "Acme", Email: "not-an-email"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.CreateSupplier(context.Background(), backend.SupplierInput{Name: "Acme", Email: "buy@acme.test"})
	require.NoError(t, err)
	require.Len(t, mock.created, 1)
}

func TestCreateOrderValidates(t *testing.T) {
	mock := &mockBackend{}
	svc := NewService(mock, nil)

	_, err := svc.CreateOrder(context.Background(), backend.PurchaseOrderInput{SupplierID: 1, ProductID: 2, Quantity: 0, UnitCost: 3})
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Empty(t, mock.createdOrders)

	order, err := svc.CreateOrder(context.Background(), backend.PurchaseOrderInput{SupplierID: 1, ProductID: 2, Quantity: 4, UnitCost: 2.5})
	require.NoError(t, err)
	require.Equal(t, 10.0, order.TotalCost)
}

func TestUpdateOrderStatusRefusesTerminalOrders(t *testing.T) {
	mock := &mockBackend{orders: []backend.PurchaseOrder{
		{ID: 10, Status: backend.POStatusDelivered},
		{ID: 11, Status: backend.POStatusPending},
	}}
	svc := NewService(mock, nil)

	_, err := svc.UpdateOrderStatus(context.Background(), 10, backend.POStatusCancelled)
	require.ErrorIs(t, err, httpx.ErrInvalidState)
	require.Empty(t, mock.transitions)

	order, err := svc.UpdateOrderStatus(context.Background(), 11, backend.POStatusApproved)
	require.NoError(t, err)
	require.Equal(t, backend.POStatusApproved, order.Status)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(&mockBackend{}, nil)

	_, err := svc.UpdateOrderStatus(context.Background(), 1, "shipped")
	require.ErrorIs(t, err, httpx.ErrValidation)
}
