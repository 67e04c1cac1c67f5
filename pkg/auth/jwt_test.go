package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
)

func TestJWTService_GeraEValidaToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	svc, err := NewJWTService()
	require.NoError(t, err)

	u := &user.User{
		ID:       "user-1",
		TenantID: "tenant-1",
		Name:     "João",
		Email:    "joao@mercado.test",
		Role:     user.RoleAdmin,
		Status:   user.StatusActive,
	}

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, string(user.RoleAdmin), claims.Role)
}

func TestJWTService_TokenInvalido(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")

	svc, err := NewJWTService()
	require.NoError(t, err)

	_, err = svc.ValidateToken("nao-e-um-token")
	require.Error(t, err)
}

func TestNewJWTService_SemChave(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	require.ErrorIs(t, err, ErrMissingJWTKey)
}
