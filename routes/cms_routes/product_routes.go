package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/controllers/cms/product_controller"
	"github.com/BassamElsayed2/e-commerceCp/middleware"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")

	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/:id", product_controller.GetProductByID)

	protected := product.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", product_controller.CreateProduct)
		protected.POST("/upload-image", product_controller.UploadImage)
		protected.PATCH("/:id", product_controller.UpdateProduct)
		protected.DELETE("/:id", product_controller.DeleteProduct)
	}
}
