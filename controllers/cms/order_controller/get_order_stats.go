package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetOrderStats godoc
// @Summary Get order stats
// @Description Returns all-time totals with a per-status breakdown plus current-month total and % change vs last month
// @Tags Admin - Orders
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	log.Printf("[admin.order-stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := `
		WITH
		all_time AS (
			SELECT
				COUNT(*)::int AS total,
				COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0)::int   AS pending,
				COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0)::int AS completed,
				COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0)::int AS cancelled
			FROM orders
		),
		cur AS (
			SELECT COUNT(*)::int AS total
			FROM orders
			WHERE created_at >= date_trunc('month', NOW())
			  AND created_at <  date_trunc('month', NOW()) + INTERVAL '1 month'
		),
		prev AS (
			SELECT COUNT(*)::int AS total
			FROM orders
			WHERE created_at >= date_trunc('month', NOW()) - INTERVAL '1 month'
			  AND created_at <  date_trunc('month', NOW())
		)
		SELECT all_time.total, all_time.pending, all_time.completed, all_time.cancelled,
		       cur.total, prev.total
		FROM all_time, cur, prev;
	`

	var stats models.OrderStatsResponse
	if err := config.Pool.QueryRow(ctx, q).Scan(
		&stats.TotalOrders,
		&stats.Pending,
		&stats.Completed,
		&stats.Cancelled,
		&stats.CurrentMonthTotal,
		&stats.PreviousMonthTotal,
	); err != nil {
		log.Printf("[admin.order-stats] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	if stats.PreviousMonthTotal > 0 {
		stats.MonthChangePercent = (float64(stats.CurrentMonthTotal) - float64(stats.PreviousMonthTotal)) /
			float64(stats.PreviousMonthTotal) * 100
	} else if stats.CurrentMonthTotal > 0 {
		stats.MonthChangePercent = 100.0
	}

	log.Printf("[admin.order-stats] respond 200 total=%d current_month=%d", stats.TotalOrders, stats.CurrentMonthTotal)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats retrieved successfully", stats))
}
