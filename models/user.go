package models

import "time"

// User is a storefront customer row, owned by the hosted auth backend.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomerStatsResponse struct {
	TotalCustomers     int     `json:"total_customers"`
	NewThisMonth       int     `json:"new_this_month"`
	NewLastMonth       int     `json:"new_last_month"`
	MonthChangePercent float64 `json:"month_change_percent"`
}
