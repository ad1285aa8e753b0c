package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Moves an order between pending/completed/cancelled
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param status body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	idParam := c.Param("id")
	if _, err := uuid.Parse(idParam); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	tag, err := config.Pool.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
	`, req.Status, idParam)
	if err != nil {
		log.Printf("[admin.order-status] ERROR id=%s err=%v", idParam, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order status"))
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	log.Printf("[admin.order-status] respond 200 id=%s status=%s", idParam, req.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", map[string]string{
		"id":     idParam,
		"status": req.Status,
	}))
}
