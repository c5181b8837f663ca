package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
	"github.com/stockdeck/stockdeck/internal/scans"
)

type mockBackend struct {
	product   backend.BarcodeProduct
	searchErr error
	sale      backend.QuickSaleResult
	saleCalls int
}

func (m *mockBackend) SearchBarcode(ctx context.Context, barcode string) (backend.BarcodeProduct, error) {
	return m.product, m.searchErr
}

func (m *mockBackend) GenerateBarcode(ctx context.Context, productID int64) (backend.GeneratedBarcode, error) {
	return backend.GeneratedBarcode{ProductID: productID, Barcode: "STK-0001"}, nil
}

func (m *mockBackend) QuickSale(ctx context.Context, barcode string, quantity int) (backend.QuickSaleResult, error) {
	m.saleCalls++
	return m.sale, nil
}

func (m *mockBackend) InventoryCheck(ctx context.Context, barcode string) (backend.InventoryCheck, error) {
	return backend.InventoryCheck{ProductName: "Desk Lamp", CurrentStock: 5}, nil
}

func newTestService(t *testing.T, mock *mockBackend) *Service {
	t.Helper()
	history := scans.NewHistory(context.Background(), kv.NewMemoryStore(), nil)
	return NewService(mock, history, nil)
}

func TestScanRecordsHistory(t *testing.T) {
	mock := &mockBackend{product: backend.BarcodeProduct{ID: 4, Name: "Desk Lamp", Barcode: "4006381333931", Stock: 5}}
	svc := newTestService(t, mock)

	result, err := svc.Scan(context.Background(), "4006381333931")
	require.NoError(t, err)
	require.Equal(t, "Desk Lamp", result.Product.Name)
	require.Len(t, result.Recent, 1)
	require.Equal(t, "4006381333931", result.Recent[0].Barcode)
}

func TestScanMissDoesNotTouchHistory(t *testing.T) {
	mock := &mockBackend{searchErr: httpx.ErrNotFound}
	svc := newTestService(t, mock)

	_, err := svc.Scan(context.Background(), "0000000000000")
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, svc.Recent())
}

func TestQuickSaleRefusesQuantityBeyondDisplayedStock(t *testing.T) {
	mock := &mockBackend{product: backend.BarcodeProduct{ID: 4, Barcode: "4006381333931", Stock: 5}}
	svc := newTestService(t, mock)

	_, err := svc.Scan(context.Background(), "4006381333931")
	require.NoError(t, err)

	_, err = svc.QuickSale(context.Background(), "4006381333931", 6)
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Zero(t, mock.saleCalls)
}

func TestQuickSaleUpdatesDisplayedStockWithoutRefetch(t *testing.T) {
	mock := &mockBackend{
		product: backend.BarcodeProduct{ID: 4, Barcode: "4006381333931", Stock: 5},
		sale:    backend.QuickSaleResult{Success: true, Quantity: 3, RemainingStock: 2},
	}
	svc := newTestService(t, mock)

	_, err := svc.Scan(context.Background(), "4006381333931")
	require.NoError(t, err)

	outcome, err := svc.QuickSale(context.Background(), "4006381333931", 3)
	require.NoError(t, err)
	require.True(t, outcome.Success)
	require.NotNil(t, outcome.Product)
	require.Equal(t, 2, outcome.Product.Stock)
	require.Equal(t, 1, mock.saleCalls)
}

func TestQuickSaleRejectsNonPositiveQuantity(t *testing.T) {
	mock := &mockBackend{}
	svc := newTestService(t, mock)

	_, err := svc.QuickSale(context.Background(), "4006381333931", 0)
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Zero(t, mock.saleCalls)
}
