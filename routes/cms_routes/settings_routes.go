package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/controllers/cms/settings_controller"
	"github.com/BassamElsayed2/e-commerceCp/middleware"
)

func SetupSettingsRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")

	settings.GET("", settings_controller.GetSettings)

	protected := settings.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("", settings_controller.UpdateSettings)
	}
}
