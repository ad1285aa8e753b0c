package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/controllers/cms/customer_controller"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")

	customer.GET("", customer_controller.GetCustomers)
	customer.GET("/stats", customer_controller.GetCustomerStats)
}
