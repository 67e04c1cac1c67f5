package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
	"github.com/hugohenrick/pdv-negocios/pkg/auth"
)

// SetupTenantRoutes configura as rotas para o módulo de negócios.
// Somente super admins administram negócios.
func SetupTenantRoutes(router *gin.RouterGroup, tenantController *controller.TenantController) {
	tenantRouter := router.Group("/tenants")
	tenantRouter.Use(auth.RoleAuthMiddleware(string(user.RoleSuperAdmin)))
	{
		tenantRouter.POST("", tenantController.Create)
		tenantRouter.GET("", tenantController.List)
		tenantRouter.GET("/:id", tenantController.Get)
		tenantRouter.PUT("/:id", tenantController.Update)
		tenantRouter.DELETE("/:id", tenantController.Delete)
	}
}
