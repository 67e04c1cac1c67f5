package sale

import (
	"context"
	"time"
)

// Repository define a interface para persistência de vendas
type Repository interface {
	// Create insere o cabeçalho da venda. Deve executar dentro da transação
	// aberta pelo orquestrador de vendas.
	Create(ctx context.Context, s *Sale) error

	// CreateItem insere um item da venda, na mesma transação do cabeçalho
	CreateItem(ctx context.Context, item *SaleItem) error

	// FindByID busca uma venda com seus itens, restrita ao negócio informado
	FindByID(ctx context.Context, tenantID, id string) (*Sale, error)

	// FindRecent lista as vendas mais recentes do negócio
	FindRecent(ctx context.Context, tenantID string, limit int) ([]*Sale, error)

	// FindReceipt monta a projeção de recibo de uma venda (venda + itens +
	// dados de exibição do negócio e do operador)
	FindReceipt(ctx context.Context, tenantID, id string) (*Receipt, error)

	// FindByPeriod lista as vendas do negócio dentro do intervalo informado
	FindByPeriod(ctx context.Context, tenantID string, start, end time.Time) ([]*Sale, error)
}
