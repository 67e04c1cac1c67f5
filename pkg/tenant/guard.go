package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
)

// Validator verifica se um negócio existe e está ativo
type Validator interface {
	ValidateTenant(ctx context.Context, tenantID string) (bool, error)
}

// Guard resolve o negócio em nome do qual uma requisição atua. Toda consulta
// subsequente do núcleo transacional deve ser filtrada pelo tenant resolvido.
type Guard struct {
	users     user.Repository
	validator Validator
}

// NewGuard cria um novo Guard. O validator é opcional: quando presente, o
// negócio resolvido também precisa existir e estar ativo.
func NewGuard(users user.Repository, validator Validator) *Guard {
	return &Guard{users: users, validator: validator}
}

// ResolveTenant determina o tenant da requisição. Super admins podem atuar
// sobre o negócio indicado em requestedTenantID (ou sem escopo, se vazio);
// os demais usuários atuam sempre sobre o próprio negócio.
func (g *Guard) ResolveTenant(ctx context.Context, userID string, role user.Role, requestedTenantID string) (string, error) {
	if role == user.RoleSuperAdmin {
		if requestedTenantID == "" {
			return "", nil
		}
		if err := g.validate(ctx, requestedTenantID); err != nil {
			return "", err
		}
		return requestedTenantID, nil
	}

	u, err := g.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrUserInactiveOrMissing
		}
		return "", fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	if !u.IsActive() {
		return "", ErrUserInactiveOrMissing
	}

	if u.TenantID == "" {
		return "", ErrNoTenantAssigned
	}

	if err := g.validate(ctx, u.TenantID); err != nil {
		return "", err
	}

	return u.TenantID, nil
}

func (g *Guard) validate(ctx context.Context, tenantID string) error {
	if g.validator == nil {
		return nil
	}

	active, err := g.validator.ValidateTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("erro ao validar negócio: %w", err)
	}
	if !active {
		return ErrTenantNotActive
	}

	return nil
}
