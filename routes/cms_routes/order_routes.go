package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/controllers/cms/order_controller"
	"github.com/BassamElsayed2/e-commerceCp/middleware"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")

	order.GET("", order_controller.GetOrders)
	order.GET("/stats", order_controller.GetOrderStats)
	order.GET("/:id", order_controller.GetOrderDetailsByID)
	order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)

	protected := order.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PATCH("/:id/status", order_controller.UpdateOrderStatus)
	}
}
