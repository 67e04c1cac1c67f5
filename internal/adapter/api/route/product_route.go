package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
	"github.com/hugohenrick/pdv-negocios/pkg/auth"
	"github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	productRouter.Use(tenant.RequireTenant())
	{
		// Consultas abertas a qualquer papel autenticado (o ponto de venda
		// usa a busca por código de barras)
		productRouter.GET("", productController.List)
		productRouter.GET("/low-stock", productController.LowStock)
		productRouter.GET("/ean/:ean", productController.GetByEAN)
		productRouter.GET("/:id", productController.Get)

		// Escritas exigem administrador
		admin := productRouter.Group("")
		admin.Use(auth.RoleAuthMiddleware(string(user.RoleSuperAdmin), string(user.RoleAdmin)))
		{
			admin.POST("", productController.Create)
			admin.PUT("/:id", productController.Update)
			admin.PATCH("/:id/stock", productController.AdjustStock)
			admin.DELETE("/:id", productController.Delete)
		}
	}
}
