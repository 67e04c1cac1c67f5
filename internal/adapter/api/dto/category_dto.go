package dto

import (
	"time"

	"github.com/hugohenrick/pdv-negocios/internal/domain/category"
)

// CategoryRequest representa a estrutura de dados para criação de categoria
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse representa a estrutura de dados de resposta para categoria
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converte um modelo de domínio em uma resposta DTO
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias para o formato de resposta
func ToCategoryListResponse(categories []*category.Category) []CategoryResponse {
	response := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, ToCategoryResponse(c))
	}
	return response
}
