package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// GetSettings godoc
// @Summary Get site settings
// @Description Returns the single site settings row. Defaults are returned if none has been saved yet.
// @Tags Admin - Settings
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/settings [get]
func GetSettings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var settings models.SiteSettings
	err := config.Gorm.WithContext(ctx).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.SiteSettings{Currency: "EGP"}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched successfully", settings))
		return
	}
	if err != nil {
		log.Printf("[admin.settings] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings fetched successfully", settings))
}
