package backend

import "time"

// Product is the inventory backend's product resource.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Stock        int       `json:"stock"`
	Price        float64   `json:"price"`
	ReorderLevel int       `json:"reorder_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LowStock reports whether the product sits at or below its reorder level.
func (p Product) LowStock() bool {
	return p.Stock <= p.ReorderLevel
}

// StockLevel classifies stock as "low", "medium" or "ok".
// Medium covers the band above the reorder level up to twice it.
func (p Product) StockLevel() string {
	switch {
	case p.Stock <= p.ReorderLevel:
		return "low"
	case p.Stock <= 2*p.ReorderLevel:
		return "medium"
	default:
		return "ok"
	}
}

// ProductPage is the paginated product listing envelope.
type ProductPage struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PerPage  int       `json:"per_page"`
	Products []Product `json:"products"`
}

// Sale is an immutable recorded sale.
type Sale struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	SaleDate    time.Time `json:"sale_date"`
}

// StockHistoryEntry is one point of a product's stock timeline.
type StockHistoryEntry struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	StockLevel int       `json:"stock_level"`
	Action     string    `json:"action"`
	RecordedAt time.Time `json:"recorded_at"`
}

// TopSeller is a row of the top-selling listing.
type TopSeller struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TotalSold int    `json:"total_sold"`
}

// DashboardStats is the backend's aggregate dashboard summary.
type DashboardStats struct {
	TotalProducts   int      `json:"total_products"`
	LowStockCount   int      `json:"low_stock_count"`
	CategoriesCount int      `json:"categories_count"`
	Revenue30Days   float64  `json:"revenue_30_days"`
	Categories      []string `json:"categories"`
}

// Prediction is a server-side stockout forecast. DaysUntilStockout and
// DepletionRate are nil when the model has no sales signal for the product.
type Prediction struct {
	ProductID          int64      `json:"product_id"`
	ProductName        string     `json:"product_name"`
	CurrentStock       int        `json:"current_stock"`
	DaysUntilStockout  *float64   `json:"predicted_days_until_stockout"`
	DepletionRate      *float64   `json:"daily_depletion_rate,omitempty"`
	Confidence         string     `json:"confidence"`
	ReorderRecommended bool       `json:"reorder_recommended"`
	StockoutDate       *time.Time `json:"predicted_stockout_date,omitempty"`
}

// Supplier resource.
type Supplier struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Rating        float64 `json:"rating"`
	TotalOrders   int     `json:"total_orders"`
	IsActive      bool    `json:"is_active"`
}

// Purchase order lifecycle statuses.
const (
	POStatusPending   = "pending"
	POStatusApproved  = "approved"
	POStatusOrdered   = "ordered"
	POStatusDelivered = "delivered"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder resource. Delivered and cancelled are terminal.
type PurchaseOrder struct {
	ID               int64      `json:"id"`
	SupplierID       int64      `json:"supplier_id"`
	ProductID        int64      `json:"product_id"`
	Quantity         int        `json:"quantity"`
	UnitCost         float64    `json:"unit_cost"`
	TotalCost        float64    `json:"total_cost"`
	Status           string     `json:"status"`
	OrderDate        *time.Time `json:"order_date,omitempty"`
	ExpectedDelivery *time.Time `json:"expected_delivery,omitempty"`
	ActualDelivery   *time.Time `json:"actual_delivery,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// Terminal reports whether no further status transition is allowed.
func (o PurchaseOrder) Terminal() bool {
	return o.Status == POStatusDelivered || o.Status == POStatusCancelled
}

// SupplierPerformance is the per-supplier delivery scorecard.
type SupplierPerformance struct {
	SupplierID         int64   `json:"supplier_id"`
	SupplierName       string  `json:"supplier_name"`
	Rating             float64 `json:"rating"`
	TotalOrders        int     `json:"total_orders"`
	CompletedOrders    int     `json:"completed_orders"`
	TotalValue         float64 `json:"total_value"`
	OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"`
	OnTimeDeliveries   int     `json:"on_time_deliveries"`
	LateDeliveries     int     `json:"late_deliveries"`
	PerformanceScore   float64 `json:"performance_score"`
	Message            string  `json:"message,omitempty"`
}

// BarcodeProduct is the barcode search result.
type BarcodeProduct struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
	Barcode  string  `json:"barcode"`
	SKU      string  `json:"sku"`
}

// GeneratedBarcode is the response of barcode generation.
type GeneratedBarcode struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id,omitempty"`
	Barcode   string `json:"barcode"`
	SKU       string `json:"sku,omitempty"`
}

// QuickSaleResult reports a completed barcode quick sale.
type QuickSaleResult struct {
	Success        bool    `json:"success"`
	SaleID         int64   `json:"sale_id"`
	ProductName    string  `json:"product_name"`
	Quantity       int     `json:"quantity"`
	TotalAmount    float64 `json:"total_amount"`
	RemainingStock int     `json:"remaining_stock"`
}

// InventoryCheck is the barcode inventory lookup result.
type InventoryCheck struct {
	ProductName  string  `json:"product_name"`
	CurrentStock int     `json:"current_stock"`
	ReorderLevel int     `json:"reorder_level"`
	Status       string  `json:"status"`
	Price        float64 `json:"price"`
}
