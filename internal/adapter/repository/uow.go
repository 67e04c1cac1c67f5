package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-negocios/internal/domain/category"
	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sequence"
	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
	pkgrepo "github.com/hugohenrick/pdv-negocios/pkg/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork implementa pkg/repository.UnitOfWork sobre o pgx.
// O rollback é garantido por defer: se a função retornar erro ou entrar em
// panic antes do commit, nenhuma escrita sobrevive.
type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

// NewUnitOfWork cria uma nova instância de PgxUnitOfWork
func NewUnitOfWork(db *pgxpool.Pool) pkgrepo.UnitOfWork {
	return &PgxUnitOfWork{db: db}
}

// WithinTx implementa pkg/repository.UnitOfWork.WithinTx
func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn func(s pkgrepo.Stores) error) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	// Rollback vira no-op depois de um commit bem-sucedido
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(&txStores{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// txStores expõe repositórios vinculados à transação corrente
type txStores struct {
	q Querier
}

func (s *txStores) Tenants() tenant.Repository {
	return NewTenantRepository(s.q)
}

func (s *txStores) Categories() category.Repository {
	return NewCategoryRepository(s.q)
}

func (s *txStores) Products() product.Repository {
	return NewProductRepository(s.q)
}

func (s *txStores) Sales() sale.Repository {
	return NewSaleRepository(s.q)
}

func (s *txStores) Sequences() sequence.Repository {
	return NewSequenceRepository(s.q)
}
