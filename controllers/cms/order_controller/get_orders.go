package order_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetOrders godoc
// @Summary Get paginated orders
// @Description Retrieve the admin orders table with optional status filter and customer/order-number search
// @Tags Admin - Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(pending, completed, cancelled)
// @Param search query string false "Search order number, customer name or email"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/orders [get]
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	status := c.Query("status")
	search := c.Query("search")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	where := "WHERE TRUE"
	args := []interface{}{}
	if status != "" {
		args = append(args, status)
		where += " AND o.status = $" + strconv.Itoa(len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := strconv.Itoa(len(args))
		where += " AND (o.order_number ILIKE $" + n +
			" OR COALESCE(u.full_name, '') ILIKE $" + n +
			" OR u.email ILIKE $" + n + ")"
	}

	var total int
	countSQL := `
		SELECT COUNT(*)
		FROM orders o
		JOIN profiles u ON u.id = o.user_id
	` + where
	if err := config.Pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		log.Printf("[admin.orders] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	listSQL := `
		SELECT o.id, o.order_number,
		       COALESCE(u.full_name, u.email) AS customer_name, u.email,
		       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id)::int AS item_count,
		       o.total_price, o.status, o.created_at
		FROM orders o
		JOIN profiles u ON u.id = o.user_id
	` + where + `
		ORDER BY o.created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := config.Pool.Query(ctx, listSQL, args...)
	if err != nil {
		log.Printf("[admin.orders] ERROR list err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}
	defer rows.Close()

	orders := make([]models.CMSOrderListRow, 0, limit)
	for rows.Next() {
		var row models.CMSOrderListRow
		if err := rows.Scan(&row.ID, &row.OrderNumber, &row.CustomerName, &row.CustomerEmail,
			&row.ItemCount, &row.TotalPrice, &row.Status, &row.CreatedAt); err != nil {
			log.Printf("[admin.orders] ERROR scan err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
			return
		}
		orders = append(orders, row)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.orders] ERROR rows err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders, meta))
}
