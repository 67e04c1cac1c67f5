package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errors.New("categoria não encontrada")
	ErrEmptyName        = errors.New("nome não pode ser vazio")
)

// DefaultName é a categoria criada junto com um novo negócio
const DefaultName = "Geral"

// DefaultDescription descreve a categoria padrão
const DefaultDescription = "Produtos sem categoria específica"

// Category agrupa os produtos de um negócio
type Category struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory cria uma nova categoria
func NewCategory(tenantID, name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Category{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}
