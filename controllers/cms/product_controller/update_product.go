package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Partial update: only supplied fields are written; a supplied attributes list replaces the whole set
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Product update fields"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	idParam := c.Param("id")
	productID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Validate category if it is being changed
	if req.CategoryID != nil {
		var category models.Category
		if err := config.Gorm.WithContext(ctx).
			Select("id").
			First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
	}

	product, warnings, err := productService.Update(ctx, productID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			log.Printf("[product.update] ERROR update failed id=%s err=%v", productID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		}
		return
	}

	log.Printf("[product.update] respond 200 id=%s warnings=%d", productID, len(warnings))
	c.JSON(http.StatusOK, models.SuccessWithWarnings(c, "Product updated successfully", product, warnings))
}
