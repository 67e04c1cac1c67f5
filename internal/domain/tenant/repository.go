package tenant

import (
	"context"
)

// Repository define a interface para operações de repositório de negócios
type Repository interface {
	// Create cria um novo negócio
	Create(ctx context.Context, t *Tenant) error

	// FindByID busca um negócio pelo ID
	FindByID(ctx context.Context, id string) (*Tenant, error)

	// List lista os negócios ativos com paginação
	List(ctx context.Context, limit, offset int) ([]*Tenant, error)

	// Update atualiza os dados de um negócio existente
	Update(ctx context.Context, t *Tenant) error

	// Delete desativa um negócio (exclusão lógica)
	Delete(ctx context.Context, id string) error

	// Exists verifica se um negócio ativo existe
	Exists(ctx context.Context, id string) (bool, error)

	// Count conta quantos negócios ativos existem
	Count(ctx context.Context) (int, error)
}
