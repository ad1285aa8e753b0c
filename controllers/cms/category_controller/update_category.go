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

// UpdateCategory godoc
// @Summary Update a category
// @Description Update category names and image. Only provided fields are changed.
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var input models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.Category
	if err := config.Gorm.WithContext(ctx).First(&existing, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	updates := map[string]interface{}{}
	if input.NameAr != nil {
		updates["name_ar"] = *input.NameAr
	}
	if input.NameEn != nil {
		updates["name_en"] = *input.NameEn
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", existing))
		return
	}

	if err := config.Gorm.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		log.Printf("[admin.category-update] ERROR id=%s err=%v", categoryID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	if err := config.Gorm.WithContext(ctx).First(&existing, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload category"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", existing))
}
