package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos.
// Os métodos FindForSale, DecrementStock e IncrementStock formam o livro-razão
// de estoque: devem ser executados dentro da mesma transação da venda/devolução
// que os invoca, nunca isoladamente.
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID, sempre restrito ao negócio informado
	FindByID(ctx context.Context, tenantID, id string) (*Product, error)

	// FindByEAN busca um produto ativo pelo código de barras
	FindByEAN(ctx context.Context, tenantID, eanCode string) (*Product, error)

	// Search lista produtos ativos do negócio, filtrando por nome ou EAN quando informado
	Search(ctx context.Context, tenantID, term string, limit, offset int) ([]*Product, error)

	// FindLowStock lista produtos ativos com estoque menor ou igual ao mínimo
	FindLowStock(ctx context.Context, tenantID string) ([]*Product, error)

	// FindForSale busca um produto ativo do negócio adquirindo bloqueio exclusivo
	// sobre a linha (FOR UPDATE). O bloqueio é mantido até o fim da transação
	// corrente, cobrindo a janela entre a validação e a baixa de estoque.
	FindForSale(ctx context.Context, tenantID, id string) (*Product, error)

	// DecrementStock subtrai quantity do estoque do produto e retorna o novo valor.
	// O chamador deve ter validado a disponibilidade na mesma transação.
	DecrementStock(ctx context.Context, tenantID, id string, quantity int) (int, error)

	// IncrementStock soma quantity ao estoque do produto e retorna o novo valor
	IncrementStock(ctx context.Context, tenantID, id string, quantity int) (int, error)

	// Update atualiza os dados cadastrais de um produto
	Update(ctx context.Context, p *Product) error

	// Delete desativa um produto (exclusão lógica)
	Delete(ctx context.Context, tenantID, id string) error

	// CountByTenant conta os produtos ativos de um negócio
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}
