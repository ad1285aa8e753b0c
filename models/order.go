package models

import "time"

// Order represents a settled customer order. Orders are written by the
// storefront; this backend only reads them.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	OrderNumber   string      `json:"order_number"`
	CustomerName  *string     `json:"customer_name,omitempty"`
	CustomerPhone *string     `json:"customer_phone,omitempty"`
	Address       *string     `json:"address,omitempty"`
	TotalPrice    float64     `json:"total_price"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Items         []OrderItem `json:"items,omitempty"`
}

// OrderItem is an individual product line in an order. Product names are
// denormalized into the row at checkout time, so the joined view may carry
// names even when the product has since been deleted.
type OrderItem struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	ProductID     *string `json:"product_id,omitempty"`
	ProductNameAr *string `json:"product_name_ar,omitempty"`
	ProductNameEn *string `json:"product_name_en,omitempty"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
}

// CMSOrderListRow is the admin orders-table row shape.
type CMSOrderListRow struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ItemCount     int       `json:"item_count"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderStatsResponse struct {
	TotalOrders        int     `json:"total_orders"`
	Pending            int     `json:"pending"`
	Completed          int     `json:"completed"`
	Cancelled          int     `json:"cancelled"`
	CurrentMonthTotal  int     `json:"current_month_total"`
	PreviousMonthTotal int     `json:"previous_month_total"`
	MonthChangePercent float64 `json:"month_change_percent"`
}
