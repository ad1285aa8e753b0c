package customer_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetCustomers godoc
// @Summary Get paginated customers
// @Description Retrieve storefront customers with optional name/email search
// @Tags Admin - Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search name or email"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/customers [get]
func GetCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	where := "WHERE TRUE"
	args := []interface{}{}
	if search := c.Query("search"); search != "" {
		args = append(args, "%"+search+"%")
		where += " AND (COALESCE(full_name, '') ILIKE $1 OR email ILIKE $1)"
	}

	var total int
	if err := config.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM profiles "+where, args...).Scan(&total); err != nil {
		log.Printf("[admin.customers] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count customers"))
		return
	}

	listSQL := `
		SELECT id, email, full_name, phone, status, created_at
		FROM profiles
	` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := config.Pool.Query(ctx, listSQL, args...)
	if err != nil {
		log.Printf("[admin.customers] ERROR list err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}
	defer rows.Close()

	customers := make([]models.User, 0, limit)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Email, &user.FullName, &user.Phone,
			&user.Status, &user.CreatedAt); err != nil {
			log.Printf("[admin.customers] ERROR scan err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
			return
		}
		customers = append(customers, user)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.customers] ERROR rows err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers fetched successfully", customers, meta))
}
