package order_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetOrderDetailsByID godoc
// @Summary Get order details
// @Description Returns one order with its items and joined product names
// @Tags Admin - Orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/orders/{id} [get]
func GetOrderDetailsByID(c *gin.Context) {
	idParam := c.Param("id")
	if _, err := uuid.Parse(idParam); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := fetchOrderWithItems(ctx, idParam)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		} else {
			log.Printf("[admin.order-details] ERROR id=%s err=%v", idParam, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}

func fetchOrderWithItems(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := config.Pool.QueryRow(ctx, `
		SELECT id, user_id, order_number, customer_name, customer_phone, address,
		       total_price, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.UserID, &order.OrderNumber, &order.CustomerName,
		&order.CustomerPhone, &order.Address, &order.TotalPrice, &order.Status,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := config.Pool.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name_ar, p.name_en, oi.price, oi.quantity
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductNameAr, &item.ProductNameEn, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &order, nil
}
