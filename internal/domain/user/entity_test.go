package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("tenant-1", "João", "joao@mercado.test", "segredo1", RoleStaff)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, u.Status)
	assert.NotEqual(t, "segredo1", u.Password, "a senha deve ser gravada como hash")
	assert.True(t, u.CheckPassword("segredo1"))
	assert.False(t, u.CheckPassword("errada"))

	_, err = NewUser("tenant-1", "João", "joao@mercado.test", "curta", RoleStaff)
	require.ErrorIs(t, err, ErrShortPassword)

	_, err = NewUser("tenant-1", "João", "joao@mercado.test", "segredo1", Role("gerente"))
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestHasAccessToTenant(t *testing.T) {
	staff := &User{TenantID: "tenant-1", Role: RoleStaff}
	assert.True(t, staff.HasAccessToTenant("tenant-1"))
	assert.False(t, staff.HasAccessToTenant("tenant-2"))

	super := &User{Role: RoleSuperAdmin}
	assert.True(t, super.HasAccessToTenant("tenant-1"))
	assert.True(t, super.HasAccessToTenant("tenant-2"))
}

func TestSetPassword(t *testing.T) {
	u := &User{}

	require.ErrorIs(t, u.SetPassword("12345"), ErrShortPassword)

	require.NoError(t, u.SetPassword("nova-senha"))
	assert.True(t, u.CheckPassword("nova-senha"))
}
