package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-negocios/internal/domain/sequence"
	"github.com/jackc/pgx/v5"
)

// SequenceRepository implementa a interface sequence.Repository
type SequenceRepository struct {
	db Querier
}

// NewSequenceRepository cria uma nova instância de SequenceRepository
func NewSequenceRepository(db Querier) sequence.Repository {
	return &SequenceRepository{db: db}
}

// Create implementa sequence.Repository.Create
func (r *SequenceRepository) Create(ctx context.Context, s *sequence.InvoiceSequence) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO invoice_sequences (tenant_id, prefix, next_number, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.TenantID, s.Prefix, s.NextNumber, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar sequência de faturamento: %w", err)
	}

	return nil
}

// FindByTenant implementa sequence.Repository.FindByTenant
func (r *SequenceRepository) FindByTenant(ctx context.Context, tenantID string) (*sequence.InvoiceSequence, error) {
	var s sequence.InvoiceSequence

	err := r.db.QueryRow(ctx,
		`SELECT tenant_id, prefix, next_number, created_at, updated_at
		 FROM invoice_sequences WHERE tenant_id = $1`,
		tenantID).Scan(&s.TenantID, &s.Prefix, &s.NextNumber, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sequence.ErrNotConfigured
		}
		return nil, fmt.Errorf("erro ao buscar sequência de faturamento: %w", err)
	}

	return &s, nil
}

// AllocateNext implementa sequence.Repository.AllocateNext. O FOR UPDATE
// serializa alocações concorrentes do mesmo negócio sem bloquear os demais;
// o incremento só se torna durável no commit da transação corrente.
func (r *SequenceRepository) AllocateNext(ctx context.Context, tenantID string) (string, error) {
	var prefix string
	var nextNumber int64

	err := r.db.QueryRow(ctx,
		`SELECT prefix, next_number FROM invoice_sequences
		 WHERE tenant_id = $1 FOR UPDATE`,
		tenantID).Scan(&prefix, &nextNumber)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", sequence.ErrNotConfigured
		}
		return "", fmt.Errorf("erro ao bloquear sequência de faturamento: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`UPDATE invoice_sequences
		 SET next_number = next_number + 1, updated_at = NOW()
		 WHERE tenant_id = $1`,
		tenantID)

	if err != nil {
		return "", fmt.Errorf("erro ao incrementar sequência de faturamento: %w", err)
	}

	return sequence.Format(prefix, nextNumber), nil
}
