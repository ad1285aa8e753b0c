package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/controllers/cms/analytics_controller"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/dashboard", analytics_controller.GetDashboardSummary)
}
