package models

// ═══════════════════════════════════════════════════════════
// Dashboard aggregation inputs
// ═══════════════════════════════════════════════════════════

// OrderStat / ProductStat / UserStat are the authoritative count reads that
// feed the dashboard aggregation alongside the bounded order page.
type OrderStat struct {
	Total int `json:"total"`
}

type ProductStat struct {
	Total int `json:"total"`
}

type UserStat struct {
	Total int `json:"total"`
}

// AnalyticsOrder is one row of the bounded dashboard order page. CreatedAt
// keeps the stored timestamp text because month bucketing matches on its
// YYYY-MM prefix, not on a parsed date range.
type AnalyticsOrder struct {
	TotalPrice float64              `json:"total_price"`
	CreatedAt  string               `json:"created_at"`
	Items      []AnalyticsOrderItem `json:"items"`
}

// AnalyticsOrderItem carries the joined product names; either may be empty
// when the product has been deleted since the order settled.
type AnalyticsOrderItem struct {
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	ProductNameAr string  `json:"product_name_ar"`
	ProductNameEn string  `json:"product_name_en"`
}

// ═══════════════════════════════════════════════════════════
// Derived summary (never persisted)
// ═══════════════════════════════════════════════════════════

// AnalyticsSummary is recomputed in full on every dashboard load; it is a
// pure function of the four reads plus wall-clock now.
//
// TotalOrders comes from the authoritative count while TotalRevenue and
// AverageOrderValue are derived from the bounded (1000-row) order page, so
// the two figures can diverge once true order volume exceeds the page bound.
// That imprecision is the accepted cost of not summing the whole table.
type AnalyticsSummary struct {
	TotalRevenue      float64           `json:"total_revenue"`
	TotalOrders       int               `json:"total_orders"`
	TotalCustomers    int               `json:"total_customers"`
	TotalProducts     int               `json:"total_products"`
	AverageOrderValue float64           `json:"average_order_value"`
	ConversionRate    float64           `json:"conversion_rate"`
	MonthlySales      []MonthlySales    `json:"monthly_sales"`
	TopProducts       []TopProductEntry `json:"top_products"`
}

// MonthlySales is one calendar-month bucket of the trailing-6-months series.
type MonthlySales struct {
	Month   string  `json:"month"`  // localized label, e.g. "يناير 2024"
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// TopProductEntry accumulates order items per resolved display name.
type TopProductEntry struct {
	Name     string  `json:"name"`
	Sales    float64 `json:"sales"`
	Quantity int     `json:"quantity"`
}
