package customer_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetCustomerStats godoc
// @Summary Get customer statistics
// @Description Returns total customers plus this-month/last-month signups and the % change
// @Tags Admin - Customers
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CustomerStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/customers/stats [get]
func GetCustomerStats(c *gin.Context) {
	log.Printf("[admin.customer-stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats models.CustomerStatsResponse
	if err := config.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*)::int AS total,
			COALESCE(SUM(CASE WHEN created_at >= date_trunc('month', NOW()) THEN 1 ELSE 0 END), 0)::int AS new_this_month,
			COALESCE(SUM(CASE WHEN created_at >= date_trunc('month', NOW()) - INTERVAL '1 month'
			                   AND created_at <  date_trunc('month', NOW()) THEN 1 ELSE 0 END), 0)::int AS new_last_month
		FROM profiles
	`).Scan(&stats.TotalCustomers, &stats.NewThisMonth, &stats.NewLastMonth); err != nil {
		log.Printf("[admin.customer-stats] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer stats"))
		return
	}

	if stats.NewLastMonth > 0 {
		stats.MonthChangePercent = (float64(stats.NewThisMonth) - float64(stats.NewLastMonth)) /
			float64(stats.NewLastMonth) * 100
	} else if stats.NewThisMonth > 0 {
		stats.MonthChangePercent = 100.0
	}

	log.Printf("[admin.customer-stats] respond 200 total=%d", stats.TotalCustomers)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer stats retrieved successfully", stats))
}
