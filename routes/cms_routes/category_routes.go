package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BassamElsayed2/e-commerceCp/controllers/cms/category_controller"
	"github.com/BassamElsayed2/e-commerceCp/middleware"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")

	category.GET("", category_controller.GetCategories)

	protected := category.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", category_controller.CreateCategory)
		protected.PUT("/:id", category_controller.UpdateCategory)
		protected.DELETE("/:id", category_controller.DeleteCategory)
	}
}
