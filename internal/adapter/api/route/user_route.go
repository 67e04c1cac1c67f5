package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
	"github.com/hugohenrick/pdv-negocios/pkg/auth"
	"github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// SetupUserRoutes configura as rotas para o módulo de usuários
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	userRouter := router.Group("/users")
	userRouter.Use(auth.RoleAuthMiddleware(string(user.RoleSuperAdmin), string(user.RoleAdmin)))
	userRouter.Use(tenant.RequireTenant())
	{
		userRouter.POST("", userController.Create)
		userRouter.GET("", userController.List)
		userRouter.GET("/:id", userController.Get)
		userRouter.PUT("/:id", userController.Update)
		userRouter.DELETE("/:id", userController.Delete)
	}
}
