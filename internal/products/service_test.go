package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockdeck/stockdeck/internal/backend"
	"github.com/stockdeck/stockdeck/internal/platform/httpx"
)

type mockBackend struct {
	listing   backend.ProductPage
	pages     map[int]backend.ProductPage
	stats     backend.DashboardStats
	gotPage   int
	gotSize   int
	gotFilter string
	gotPages  []int
	restocks  map[int64]int
	deleted   []int64
}

func (m *mockBackend) ListProducts(ctx context.Context, page, perPage int, category string) backend.ProductPage {
	m.gotPage, m.gotSize, m.gotFilter = page, perPage, category
	m.gotPages = append(m.gotPages, page)
	if p, ok := m.pages[page]; ok {
		return p
	}
	return m.listing
}

func (m *mockBackend) GetDashboardStats(ctx context.Context) backend.DashboardStats {
	return m.stats
}

func (m *mockBackend) CreateProduct(ctx context.Context, input backend.ProductInput) (backend.Product, error) {
	return backend.Product{ID: 1, Name: input.Name}, nil
}

func (m *mockBackend) UpdateProduct(ctx context.Context, id int64, input backend.ProductInput) (backend.Product, error) {
	return backend.Product{ID: id, Name: input.Name}, nil
}

func (m *mockBackend) DeleteProduct(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockBackend) RestockProduct(ctx context.Context, id int64, quantity int) (backend.Product, error) {
	if m.restocks == nil {
		m.restocks = make(map[int64]int)
	}
	m.restocks[id] += quantity
	return backend.Product{ID: id, Stock: quantity}, nil
}

func TestFilterMatchesNameOrCategoryCaseInsensitive(t *testing.T) {
	items := []backend.Product{
		{ID: 1, Name: "iPhone 15 Pro", Category: "Electronics"},
		{ID: 2, Name: "Desk Lamp", Category: "Home"},
		{ID: 3, Name: "USB Cable", Category: "electronics"},
	}

	require.Len(t, Filter(items, "electronics"), 2)
	require.Len(t, Filter(items, "LAMP"), 1)
	require.Len(t, Filter(items, "usb"), 1)
	require.Empty(t, Filter(items, "garden"))
	require.Len(t, Filter(items, ""), 3)
}

func TestLoadPaginatesWithFixedPageSize(t *testing.T) {
	mock := &mockBackend{listing: backend.ProductPage{Total: 37}}
	svc := NewService(mock, nil)

	view, err := svc.Load(context.Background(), 2, "", "")
	require.NoError(t, err)
	require.Equal(t, 15, mock.gotSize)
	require.Equal(t, 3, view.Pagination.TotalPages)
	require.Equal(t, 2, view.Pagination.Page)
	require.True(t, view.Pagination.HasNext())
	require.True(t, view.Pagination.HasPrev())
}

func TestLoadClampsPage(t *testing.T) {
	mock := &mockBackend{listing: backend.ProductPage{Total: 37}}
	svc := NewService(mock, nil)

	view, err := svc.Load(context.Background(), -4, "", "")
	require.NoError(t, err)
	require.Equal(t, 1, view.Pagination.Page)
	require.False(t, view.Pagination.HasPrev())

	view, err = svc.Load(context.Background(), 99, "", "")
	require.NoError(t, err)
	require.Equal(t, 3, view.Pagination.Page)
	require.False(t, view.Pagination.HasNext())
}

func TestLoadRefetchesWhenPageOvershootsListing(t *testing.T) {
	lastPage := backend.ProductPage{
		Total: 37, Page: 3, PerPage: 15,
		Products: []backend.Product{{ID: 31, Name: "Soldering Iron", Category: "Tools"}},
	}
	mock := &mockBackend{
		listing: backend.ProductPage{Total: 37, Products: []backend.Product{}},
		pages:   map[int]backend.ProductPage{3: lastPage},
	}
	svc := NewService(mock, nil)

	view, err := svc.Load(context.Background(), 99, "", "")
	require.NoError(t, err)
	require.Equal(t, 3, view.Pagination.Page)
	require.Equal(t, []int{99, 3}, mock.gotPages, "overshoot must be refetched at the clamped page")
	require.Len(t, view.Products, 1)
	require.Equal(t, "Soldering Iron", view.Products[0].Name)
}

func TestLoadSearchDoesNotChangeTotals(t *testing.T) {
	mock := &mockBackend{listing: backend.ProductPage{
		Total: 37,
		Products: []backend.Product{
			{ID: 1, Name: "Hammer", Category: "Tools"},
			{ID: 2, Name: "Lamp", Category: "Home"},
		},
	}}
	svc := NewService(mock, nil)

	view, err := svc.Load(context.Background(), 1, "", "hammer")
	require.NoError(t, err)
	require.Len(t, view.Products, 1)
	require.Equal(t, 37, view.Pagination.Total)
	require.Equal(t, 3, view.Pagination.TotalPages)
}

func TestLoadPassesCategoryFilterThrough(t *testing.T) {
	mock := &mockBackend{}
	svc := NewService(mock, nil)

	_, err := svc.Load(context.Background(), 1, "Home", "")
	require.NoError(t, err)
	require.Equal(t, "Home", mock.gotFilter)
}

func TestRestockRejectsNonPositiveQuantity(t *testing.T) {
	mock := &mockBackend{}
	svc := NewService(mock, nil)

	_, err := svc.Restock(context.Background(), 5, 0)
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Empty(t, mock.restocks)

	_, err = svc.Restock(context.Background(), 5, 50)
	require.NoError(t, err)
	require.Equal(t, 50, mock.restocks[5])
}
