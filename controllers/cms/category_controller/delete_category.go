package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	category_cache "github.com/BassamElsayed2/e-commerceCp/cache"
	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category by ID. Fails with 409 if products still reference it.
// @Tags Admin - Categories
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.Gorm.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	var productCount int64
	if err := config.Gorm.WithContext(ctx).Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to check category usage"))
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cannot delete category with products"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&category).Error; err != nil {
		log.Printf("[admin.category-delete] ERROR id=%s err=%v", categoryID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}
