package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
	"github.com/hugohenrick/pdv-negocios/pkg/auth"
	"github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// SetupCategoryRoutes configura as rotas para o módulo de categorias
func SetupCategoryRoutes(router *gin.RouterGroup, categoryController *controller.CategoryController) {
	categoryRouter := router.Group("/categories")
	categoryRouter.Use(tenant.RequireTenant())
	{
		categoryRouter.GET("", categoryController.List)
		categoryRouter.GET("/:id", categoryController.Get)

		admin := categoryRouter.Group("")
		admin.Use(auth.RoleAuthMiddleware(string(user.RoleSuperAdmin), string(user.RoleAdmin)))
		{
			admin.POST("", categoryController.Create)
		}
	}
}
