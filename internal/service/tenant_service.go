package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-negocios/internal/domain/category"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sequence"
	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
	"github.com/hugohenrick/pdv-negocios/pkg/logger"
	"github.com/hugohenrick/pdv-negocios/pkg/repository"
)

// TenantService provisiona negócios. A criação de um negócio, da sua
// sequência de faturamento e da categoria padrão é uma única transação:
// nunca existe negócio ativo sem sequência configurada.
type TenantService struct {
	uow repository.UnitOfWork
	log logger.Logger
}

// NewTenantService cria uma nova instância de TenantService
func NewTenantService(uow repository.UnitOfWork, log logger.Logger) *TenantService {
	return &TenantService{uow: uow, log: log}
}

// Provision cria o negócio com sua sequência de faturamento (prefixo FAC,
// próximo número 1) e a categoria padrão
func (s *TenantService) Provision(ctx context.Context, t *tenant.Tenant) error {
	err := s.uow.WithinTx(ctx, func(st repository.Stores) error {
		if err := st.Tenants().Create(ctx, t); err != nil {
			return fmt.Errorf("erro ao criar negócio: %w", err)
		}

		seq, err := sequence.NewInvoiceSequence(t.ID, sequence.DefaultPrefix)
		if err != nil {
			return err
		}
		if err := st.Sequences().Create(ctx, seq); err != nil {
			return fmt.Errorf("erro ao criar sequência de faturamento: %w", err)
		}

		cat, err := category.NewCategory(t.ID, category.DefaultName, category.DefaultDescription)
		if err != nil {
			return err
		}
		if err := st.Categories().Create(ctx, cat); err != nil {
			return fmt.Errorf("erro ao criar categoria padrão: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.log.Info("negócio provisionado", "tenant_id", t.ID, "name", t.Name)
	return nil
}
