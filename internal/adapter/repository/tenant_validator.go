package repository

import (
	"context"
	"errors"

	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
	pkgtenant "github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// TenantValidator verifica existência e status de negócios para o Guard
type TenantValidator struct {
	repository tenant.Repository
}

// NewTenantValidator cria uma nova instância de TenantValidator
func NewTenantValidator(repository tenant.Repository) pkgtenant.Validator {
	return &TenantValidator{repository: repository}
}

// ValidateTenant verifica se um negócio existe e está ativo
func (v *TenantValidator) ValidateTenant(ctx context.Context, tenantID string) (bool, error) {
	t, err := v.repository.FindByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return false, nil
		}
		return false, err
	}

	return t.IsActive(), nil
}
