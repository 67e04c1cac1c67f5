package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// SetupSaleRoutes configura as rotas para o módulo de vendas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	saleRouter.Use(tenant.RequireTenant())
	{
		saleRouter.POST("", saleController.Create)
		saleRouter.POST("/returns", saleController.CreateReturn)
		saleRouter.GET("", saleController.List)
		saleRouter.GET("/:id/receipt", saleController.Receipt)
	}
}
