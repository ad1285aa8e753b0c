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

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product by ID along with its stored images; attribute rows cascade in the database
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	// Step 1: Parse and validate product ID
	idParam := c.Param("id")
	productID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Remove images then the row. A failed image-list fetch or row
	// delete is a hard error; individual image removals only warn.
	warnings, err := productService.Delete(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			log.Printf("[product.delete] ERROR id=%s err=%v", productID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		}
		return
	}

	log.Printf("[product.delete] respond 200 id=%s warnings=%d", productID, len(warnings))
	c.JSON(http.StatusOK, models.SuccessWithWarnings(c, "Product deleted successfully", map[string]string{
		"id": productID.String(),
	}, warnings))
}
