package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
	"github.com/hugohenrick/pdv-negocios/pkg/auth"
	"github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// SetupReportRoutes configura as rotas para o módulo de relatórios
func SetupReportRoutes(router *gin.RouterGroup, reportController *controller.ReportController) {
	reportRouter := router.Group("/reports")
	reportRouter.Use(tenant.RequireTenant())
	reportRouter.Use(auth.RoleAuthMiddleware(string(user.RoleSuperAdmin), string(user.RoleAdmin)))
	{
		reportRouter.GET("/summary", reportController.Summary)
	}
}
