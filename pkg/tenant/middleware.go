package tenant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
)

// Middleware resolve o negócio da requisição através do Guard e o grava no
// contexto. Deve ser registrado depois do middleware de autenticação JWT,
// que popula user_id e user_role.
func Middleware(guard *Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := user.Role(c.GetString("user_role"))

		// Super admins podem indicar o negócio alvo na query string;
		// a ausência resulta em um contexto sem escopo de tenant.
		requested := c.Query("tenant_id")

		tenantID, err := guard.ResolveTenant(c.Request.Context(), userID, role, requested)
		if err != nil {
			switch {
			case errors.Is(err, ErrUserInactiveOrMissing):
				c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(
					http.StatusNotFound,
					"Usuário não encontrado",
					err.Error(),
				))
			case errors.Is(err, ErrTenantNotActive):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
					http.StatusForbidden,
					"Negócio não está ativo",
					err.Error(),
				))
			case errors.Is(err, ErrNoTenantAssigned):
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
					http.StatusBadRequest,
					"Usuário sem negócio atribuído",
					err.Error(),
				))
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					http.StatusInternalServerError,
					"Erro ao resolver negócio",
					err.Error(),
				))
			}
			return
		}

		c.Set("tenant_id", tenantID)
		c.Request = c.Request.WithContext(SetTenantIDContext(c.Request.Context(), tenantID))

		c.Next()
	}
}

// RequireTenant bloqueia requisições cujo contexto não tenha negócio resolvido.
// Usado nas rotas em que um super admin precisa indicar explicitamente o alvo.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("tenant_id") == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"Negócio não especificado",
				ErrTenantNotSpecified.Error(),
			))
			return
		}
		c.Next()
	}
}
