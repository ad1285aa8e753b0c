package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	category_cache "github.com/BassamElsayed2/e-commerceCp/cache"
	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// CreateCategory godoc
// @Summary Create a category
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category := models.Category{
		NameAr: req.NameAr,
		NameEn: req.NameEn,
		Image:  req.Image,
	}
	if err := config.Gorm.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[admin.category-create] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
