package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BassamElsayed2/e-commerceCp/config"
	"github.com/BassamElsayed2/e-commerceCp/models"
)

// UpdateSettings godoc
// @Summary Update site settings
// @Description Updates the single site settings row, creating it on first save. Only provided fields are changed.
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Param settings body models.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/settings [put]
func UpdateSettings(c *gin.Context) {
	var input models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var settings models.SiteSettings
	err := config.Gorm.WithContext(ctx).First(&settings).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if err == gorm.ErrRecordNotFound {
		settings = models.SiteSettings{Currency: "EGP"}
		applySettingsInput(&settings, input)
		if createErr := config.Gorm.WithContext(ctx).Create(&settings).Error; createErr != nil {
			log.Printf("[admin.settings-update] ERROR create err=%v", createErr)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save settings"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings saved successfully", settings))
		return
	}

	updates := map[string]interface{}{}
	if input.SiteNameAr != nil {
		updates["site_name_ar"] = *input.SiteNameAr
	}
	if input.SiteNameEn != nil {
		updates["site_name_en"] = *input.SiteNameEn
	}
	if input.Logo != nil {
		updates["logo"] = *input.Logo
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Currency != nil {
		updates["currency"] = *input.Currency
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", settings))
		return
	}

	if err := config.Gorm.WithContext(ctx).Model(&settings).Updates(updates).Error; err != nil {
		log.Printf("[admin.settings-update] ERROR update err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save settings"))
		return
	}

	if err := config.Gorm.WithContext(ctx).First(&settings, "id = ?", settings.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload settings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings updated successfully", settings))
}

func applySettingsInput(settings *models.SiteSettings, input models.UpdateSettingsRequest) {
	if input.SiteNameAr != nil {
		settings.SiteNameAr = *input.SiteNameAr
	}
	if input.SiteNameEn != nil {
		settings.SiteNameEn = *input.SiteNameEn
	}
	if input.Logo != nil {
		settings.Logo = input.Logo
	}
	if input.Email != nil {
		settings.Email = input.Email
	}
	if input.Phone != nil {
		settings.Phone = input.Phone
	}
	if input.Address != nil {
		settings.Address = input.Address
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
}
