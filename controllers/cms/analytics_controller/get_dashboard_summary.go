package analytics_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
	"github.com/BassamElsayed2/e-commerceCp/services"
)

// The dashboard derives revenue and averages from at most this many recent
// orders. The authoritative order count is read separately, so the two can
// diverge once true volume exceeds the page; that trade-off is documented
// on models.AnalyticsSummary.
const orderPageSize = 1000

// GetDashboardSummary godoc
// @Summary Get dashboard summary
// @Description Returns revenue, counts, conversion rate, trailing-6-months sales series and top products
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsSummary}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/dashboard [get]
func GetDashboardSummary(c *gin.Context) {
	log.Printf("[admin.analytics-dashboard] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Four independent reads, joined fail-fast: any failure aborts the whole
	// aggregation and no partial summary is produced.
	var in services.DashboardInputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return config.Pool.QueryRow(gctx, `SELECT COUNT(*) FROM orders`).Scan(&in.OrderStats.Total)
	})
	g.Go(func() error {
		return config.Pool.QueryRow(gctx, `SELECT COUNT(*) FROM products`).Scan(&in.ProductStats.Total)
	})
	g.Go(func() error {
		return config.Pool.QueryRow(gctx, `SELECT COUNT(*) FROM profiles`).Scan(&in.UserStats.Total)
	})
	g.Go(func() error {
		orders, err := fetchRecentOrders(gctx)
		if err != nil {
			return err
		}
		in.Orders = orders
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("[admin.analytics-dashboard] ERROR aggregate read err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	summary := services.BuildDashboardSummary(time.Now(), in)

	log.Printf("[admin.analytics-dashboard] respond 200 revenue=%.2f orders=%d customers=%d products=%d",
		summary.TotalRevenue, summary.TotalOrders, summary.TotalCustomers, summary.TotalProducts)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard summary retrieved successfully", summary))
}

// fetchRecentOrders loads the bounded order page with its items and the
// joined product names. Timestamps stay textual because the month series
// buckets on their YYYY-MM prefix.
func fetchRecentOrders(ctx context.Context) ([]models.AnalyticsOrder, error) {
	rows, err := config.Pool.Query(ctx, `
		SELECT id, total_price, created_at::text
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, orderPageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.AnalyticsOrder, 0)
	index := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		var order models.AnalyticsOrder
		if err := rows.Scan(&id, &order.TotalPrice, &order.CreatedAt); err != nil {
			return nil, err
		}
		index[id] = len(orders)
		ids = append(ids, id)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := config.Pool.Query(ctx, `
		SELECT oi.order_id, oi.quantity, oi.price,
		       COALESCE(p.name_ar, ''), COALESCE(p.name_en, '')
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item models.AnalyticsOrderItem
		if err := itemRows.Scan(&orderID, &item.Quantity, &item.Price,
			&item.ProductNameAr, &item.ProductNameEn); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
