package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]*user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context, tenantID string, limit, offset int) ([]*user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }
func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	return nil
}
func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, tenantID, email string) (bool, error) {
	return false, nil
}

type fakeValidator struct {
	active map[string]bool
}

func (v *fakeValidator) ValidateTenant(ctx context.Context, tenantID string) (bool, error) {
	return v.active[tenantID], nil
}

func newTestGuard(users map[string]*user.User, active map[string]bool) *Guard {
	var v Validator
	if active != nil {
		v = &fakeValidator{active: active}
	}
	return NewGuard(&fakeUserRepo{users: users}, v)
}

func TestResolveTenant_SuperAdminUsaONegocioSolicitado(t *testing.T) {
	guard := newTestGuard(nil, nil)

	tenantID, err := guard.ResolveTenant(context.Background(), "admin-1", user.RoleSuperAdmin, "tenant-9")
	require.NoError(t, err)
	assert.Equal(t, "tenant-9", tenantID)

	// Sem negócio solicitado, o contexto fica sem escopo
	tenantID, err = guard.ResolveTenant(context.Background(), "admin-1", user.RoleSuperAdmin, "")
	require.NoError(t, err)
	assert.Empty(t, tenantID)
}

func TestResolveTenant_UsuarioComumUsaOProprioNegocio(t *testing.T) {
	users := map[string]*user.User{
		"user-1": {ID: "user-1", TenantID: "tenant-1", Status: user.StatusActive},
	}
	guard := newTestGuard(users, nil)

	// O negócio solicitado é ignorado para usuários comuns
	tenantID, err := guard.ResolveTenant(context.Background(), "user-1", user.RoleStaff, "tenant-9")
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", tenantID)
}

func TestResolveTenant_UsuarioInexistenteOuInativo(t *testing.T) {
	users := map[string]*user.User{
		"user-2": {ID: "user-2", TenantID: "tenant-1", Status: user.StatusInactive},
	}
	guard := newTestGuard(users, nil)

	_, err := guard.ResolveTenant(context.Background(), "fantasma", user.RoleStaff, "")
	require.ErrorIs(t, err, ErrUserInactiveOrMissing)

	_, err = guard.ResolveTenant(context.Background(), "user-2", user.RoleStaff, "")
	require.ErrorIs(t, err, ErrUserInactiveOrMissing)
}

func TestResolveTenant_UsuarioSemNegocioAtribuido(t *testing.T) {
	users := map[string]*user.User{
		"user-3": {ID: "user-3", Status: user.StatusActive},
	}
	guard := newTestGuard(users, nil)

	_, err := guard.ResolveTenant(context.Background(), "user-3", user.RoleAdmin, "")
	require.ErrorIs(t, err, ErrNoTenantAssigned)
}

func TestResolveTenant_NegocioInativo(t *testing.T) {
	users := map[string]*user.User{
		"user-4": {ID: "user-4", TenantID: "tenant-1", Status: user.StatusActive},
	}
	active := map[string]bool{"tenant-1": false, "tenant-2": true}
	guard := newTestGuard(users, active)

	_, err := guard.ResolveTenant(context.Background(), "user-4", user.RoleStaff, "")
	require.ErrorIs(t, err, ErrTenantNotActive)

	// Super admin também não atua sobre negócio inativo
	_, err = guard.ResolveTenant(context.Background(), "admin-1", user.RoleSuperAdmin, "tenant-1")
	require.ErrorIs(t, err, ErrTenantNotActive)

	tenantID, err := guard.ResolveTenant(context.Background(), "admin-1", user.RoleSuperAdmin, "tenant-2")
	require.NoError(t, err)
	assert.Equal(t, "tenant-2", tenantID)
}
