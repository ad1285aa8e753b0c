package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	category_cache "github.com/BassamElsayed2/e-commerceCp/cache"
	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetCategories godoc
// @Summary Get all categories
// @Description Returns every category with its product count, served from a short-lived cache
// @Tags Admin - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/categories [get]
func GetCategories(c *gin.Context) {
	if categories, counts, ok := category_cache.GetList(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", buildPayload(categories, counts)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := make([]models.Category, 0)
	if err := config.Gorm.WithContext(ctx).
		Order("name_ar ASC").
		Find(&categories).Error; err != nil {
		log.Printf("[admin.categories] ERROR list err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	type countRow struct {
		CategoryID string
		Count      int
	}
	var countRows []countRow
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Select("category_id::text AS category_id, COUNT(*)::int AS count").
		Group("category_id").
		Scan(&countRows).Error; err != nil {
		log.Printf("[admin.categories] ERROR product counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	counts := make(map[string]int, len(countRows))
	for _, row := range countRows {
		counts[row.CategoryID] = row.Count
	}

	category_cache.SetList(categories, counts)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", buildPayload(categories, counts)))
}

func buildPayload(categories []models.Category, counts map[string]int) []gin.H {
	payload := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		payload = append(payload, gin.H{
			"id":            category.ID,
			"name_ar":       category.NameAr,
			"name_en":       category.NameEn,
			"image":         category.Image,
			"created_at":    category.CreatedAt,
			"product_count": counts[category.ID.String()],
		})
	}
	return payload
}
