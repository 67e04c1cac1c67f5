package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-negocios/pkg/auth"
)

// SetupAuthRoutes configura as rotas para o módulo de autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		// Login não requer autenticação
		authRouter.POST("/login", authController.Login)

		// Rotas do usuário autenticado
		authenticated := authRouter.Group("")
		authenticated.Use(auth.JWTAuthMiddleware(jwtService))
		{
			authenticated.GET("/me", authController.Me)
			authenticated.PUT("/password", authController.ChangePassword)
		}
	}
}
