package backend

// Advanced analytics payloads. The backend answers with an "error" field
// instead of a non-2xx status when it lacks enough sales history, so every
// forecast type carries one and view models check Insufficient().

// DailyRevenuePoint is one forecast day.
type DailyRevenuePoint struct {
	Day              int     `json:"day"`
	Date             string  `json:"date"`
	PredictedRevenue float64 `json:"predicted_revenue"`
}

// RevenueForecast is the ML revenue projection.
type RevenueForecast struct {
	ForecastDays     int                 `json:"forecast_days"`
	PredictedRevenue float64             `json:"predicted_revenue"`
	DailyPredictions []DailyRevenuePoint `json:"daily_predictions"`
	Confidence       string              `json:"confidence"`
	AccuracyScore    float64             `json:"accuracy_score"`
	Trend            string              `json:"trend"`
	Error            string              `json:"error,omitempty"`
	Message          string              `json:"message,omitempty"`
}

// Insufficient reports whether the backend declined to forecast.
func (f RevenueForecast) Insufficient() bool { return f.Error != "" }

// MonthlyTrend summarises one calendar month of sales.
type MonthlyTrend struct {
	Month        int     `json:"month"`
	MonthName    string  `json:"month_name"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
	AvgSaleValue float64 `json:"avg_sale_value"`
}

// DailyTrend summarises one weekday of sales.
type DailyTrend struct {
	DayOfWeek    int     `json:"day_of_week"`
	DayName      string  `json:"day_name"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
}

// SeasonalTrends groups monthly and weekday patterns.
type SeasonalTrends struct {
	MonthlyTrends []MonthlyTrend `json:"monthly_trends"`
	DailyTrends   []DailyTrend   `json:"daily_trends"`
	PeakMonth     string         `json:"peak_month,omitempty"`
	PeakDay       string         `json:"peak_day,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// Insufficient reports whether the backend declined to analyse.
func (t SeasonalTrends) Insufficient() bool { return t.Error != "" }

// CategoryPerformance compares one category's recent results.
type CategoryPerformance struct {
	Category      string  `json:"category"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalSales    int     `json:"total_sales"`
	ProductCount  int     `json:"product_count"`
	AvgSaleValue  float64 `json:"avg_sale_value"`
	RevenueShare  float64 `json:"revenue_share,omitempty"`
	GrowthPercent float64 `json:"growth_percent,omitempty"`
}

// Anomaly is an unusual sales observation flagged by the backend.
type Anomaly struct {
	Date        string  `json:"date"`
	Revenue     float64 `json:"revenue"`
	SalesCount  int     `json:"sales_count"`
	Type        string  `json:"type"`
	Deviation   float64 `json:"deviation,omitempty"`
	Description string  `json:"description,omitempty"`
}

// DemandPoint is one day of a product demand forecast.
type DemandPoint struct {
	Day             int     `json:"day"`
	Date            string  `json:"date"`
	PredictedDemand float64 `json:"predicted_demand"`
}

// DemandForecast projects unit demand for a product.
type DemandForecast struct {
	ProductID       int64         `json:"product_id"`
	ProductName     string        `json:"product_name"`
	ForecastDays    int           `json:"forecast_days"`
	TotalDemand     float64       `json:"total_predicted_demand"`
	DailyForecast   []DemandPoint `json:"daily_forecast"`
	Confidence      string        `json:"confidence"`
	RestockRequired bool          `json:"restock_required,omitempty"`
	Error           string        `json:"error,omitempty"`
	Message         string        `json:"message,omitempty"`
}

// Insufficient reports whether the backend declined to forecast.
func (f DemandForecast) Insufficient() bool { return f.Error != "" }

// PriceOptimization is the backend's pricing suggestion for a product.
type PriceOptimization struct {
	ProductID        int64   `json:"product_id"`
	ProductName      string  `json:"product_name"`
	CurrentPrice     float64 `json:"current_price"`
	SuggestedPrice   float64 `json:"suggested_price"`
	ExpectedRevenue  float64 `json:"expected_revenue_change,omitempty"`
	PriceElasticity  float64 `json:"price_elasticity,omitempty"`
	Recommendation   string  `json:"recommendation,omitempty"`
	Error            string  `json:"error,omitempty"`
	Message          string  `json:"message,omitempty"`
}

// Insufficient reports whether the backend declined to optimise.
func (p PriceOptimization) Insufficient() bool { return p.Error != "" }
