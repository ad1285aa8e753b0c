package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetProductStats godoc
// @Summary Get product statistics
// @Description Returns catalog totals, flag breakdowns, out-of-stock count and average price
// @Tags CMS - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ProductStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	log.Printf("[admin.product-stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats models.ProductStatsResponse
	err := config.Gorm.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)::int                                                    AS total_products,
			COALESCE(SUM(CASE WHEN is_best_seller THEN 1 ELSE 0 END), 0)::int AS best_sellers,
			COALESCE(SUM(CASE WHEN is_offer THEN 1 ELSE 0 END), 0)::int       AS active_offers,
			COALESCE(SUM(CASE WHEN stock = 0 THEN 1 ELSE 0 END), 0)::int      AS out_of_stock,
			COALESCE(AVG(price), 0)::float8                                   AS average_price,
			COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0)::int AS new_this_month
		FROM products
	`, monthStart).Row().Scan(
		&stats.TotalProducts,
		&stats.BestSellers,
		&stats.ActiveOffers,
		&stats.OutOfStock,
		&stats.AveragePrice,
		&stats.NewThisMonth,
	)
	if err != nil {
		log.Printf("[admin.product-stats] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	if stats.TotalProducts > 0 {
		stats.PercentBestSell = float64(stats.BestSellers) / float64(stats.TotalProducts) * 100
		stats.PercentOnOffer = float64(stats.ActiveOffers) / float64(stats.TotalProducts) * 100
	}

	log.Printf("[admin.product-stats] respond 200 total=%d", stats.TotalProducts)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats retrieved successfully", stats))
}
