package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product row plus its attributes as a dependent second step
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [post]
func CreateProduct(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[product.create] ERROR invalid request err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Validate category exists
	var category models.Category
	if err := config.Gorm.WithContext(ctx).
		Select("id").
		First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Insert row, then attributes. Attribute failure is a warning,
	// not an error: the created product is returned either way.
	product, warnings, err := productService.Create(ctx, req)
	if err != nil {
		log.Printf("[product.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	log.Printf("[product.create] respond 201 id=%s warnings=%d", product.ID, len(warnings))
	c.JSON(http.StatusCreated, models.SuccessWithWarnings(c, "Product created successfully", product, warnings))
}
