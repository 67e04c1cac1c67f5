package sequence

import (
	"context"
)

// Repository define a interface para operações sobre sequências de faturamento
type Repository interface {
	// Create cria a sequência de faturamento de um negócio
	Create(ctx context.Context, s *InvoiceSequence) error

	// FindByTenant busca a sequência de um negócio
	FindByTenant(ctx context.Context, tenantID string) (*InvoiceSequence, error)

	// AllocateNext aloca o próximo número de fatura do negócio e retorna o número
	// já formatado (prefixo + sufixo numérico). A alocação deve bloquear a linha da
	// sequência até o fim da transação corrente, de modo que alocações concorrentes
	// para o mesmo negócio sejam serializadas e um rollback devolva o contador.
	// Retorna ErrNotConfigured se o negócio não possui sequência.
	AllocateNext(ctx context.Context, tenantID string) (string, error)
}
