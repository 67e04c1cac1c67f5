package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário ativo pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista os usuários ativos de um negócio com paginação
	List(ctx context.Context, tenantID string, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// Delete desativa um usuário (exclusão lógica)
	Delete(ctx context.Context, id string) error

	// UpdatePassword atualiza a senha (já com hash) de um usuário
	UpdatePassword(ctx context.Context, id, hashedPassword string) error

	// ExistsByEmail verifica se já existe usuário com o email no negócio
	ExistsByEmail(ctx context.Context, tenantID, email string) (bool, error)
}
