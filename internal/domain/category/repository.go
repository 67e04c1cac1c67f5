package category

import (
	"context"
)

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID, restrita ao negócio informado
	FindByID(ctx context.Context, tenantID, id string) (*Category, error)

	// List lista as categorias de um negócio ordenadas por nome
	List(ctx context.Context, tenantID string) ([]*Category, error)
}
