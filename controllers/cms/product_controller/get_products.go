package product_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetProducts godoc
// @Summary Get paginated products
// @Description Retrieve products with pagination and optional filters (category, search, date window, flags)
// @Tags CMS - Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param category_id query string false "Filter by category UUID"
// @Param search query string false "Case-insensitive match over Arabic or English name"
// @Param date_window query string false "Relative creation window" Enums(today, 7days, month, year)
// @Param is_best_seller query bool false "Filter by best-seller flag"
// @Param is_offer query bool false "Filter by limited-time-offer flag"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [get]
func GetProducts(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	// Step 2: Collect optional filters
	var filters models.ProductFilters

	if categoryParam := c.Query("category_id"); categoryParam != "" {
		categoryID, err := uuid.Parse(categoryParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
			return
		}
		filters.CategoryID = &categoryID
	}
	filters.Search = c.Query("search")
	if window := c.Query("date_window"); window != "" {
		switch window {
		case "today", "7days", "month", "year":
			filters.DateWindow = window
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date_window"))
			return
		}
	}
	if v := c.Query("is_best_seller"); v != "" {
		flag := v == "true"
		filters.IsBestSeller = &flag
	}
	if v := c.Query("is_offer"); v != "" {
		flag := v == "true"
		filters.IsOffer = &flag
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 3: Fetch page + total match count
	products, total, err := productService.List(ctx, page, limit, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Step 4: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, meta))
}
