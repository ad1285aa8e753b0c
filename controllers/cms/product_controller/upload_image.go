package product_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

const defaultUploadFolder = "products"

// UploadImage godoc
// @Summary Upload a product image
// @Description Accepts a multipart file or a JSON {base64, file_name} pair and returns the public URL
// @Tags CMS - Products
// @Accept json,mpfd
// @Produce json
// @Param image formData file false "Image file (multipart path)"
// @Param folder formData string false "Storage folder" default(products)
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products/upload-image [post]
func UploadImage(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		file, header, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
			return
		}
		defer file.Close()

		folder := c.PostForm("folder")
		if folder == "" {
			folder = defaultUploadFolder
		}

		url, err := productService.UploadImageFile(ctx, file, header.Filename, folder)
		if err != nil {
			log.Printf("[product.upload-image] ERROR file upload err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded successfully", map[string]string{"url": url}))
		return
	}

	var req models.UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if req.Folder == "" {
		req.Folder = defaultUploadFolder
	}

	url, err := productService.UploadImageBase64(ctx, req.Base64, req.FileName, req.Folder)
	if err != nil {
		log.Printf("[product.upload-image] ERROR base64 upload err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded successfully", map[string]string{"url": url}))
}
