package dto

import (
	"time"

	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
)

// ProductRequest representa a estrutura de dados para criação/atualização de produto
type ProductRequest struct {
	EANCode       string  `json:"ean_code"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchase_price" binding:"min=0"`
	SalePrice     float64 `json:"sale_price" binding:"required,gt=0"`
	Stock         int     `json:"stock" binding:"min=0"`
	MinStock      int     `json:"min_stock" binding:"min=0"`
	CategoryID    string  `json:"category_id"`
}

// StockAdjustmentRequest representa a estrutura de dados para ajuste de estoque
type StockAdjustmentRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

// ProductResponse representa a estrutura de dados de resposta para produto
type ProductResponse struct {
	ID            string    `json:"id"`
	EANCode       string    `json:"ean_code"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	Stock         int       `json:"stock"`
	MinStock      int       `json:"min_stock"`
	CategoryID    string    `json:"category_id,omitempty"`
	Status        string    `json:"status"`
	LowStock      bool      `json:"low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductListResponse representa a resposta de listagem de produtos
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um modelo de domínio em uma resposta DTO
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		EANCode:       p.EANCode,
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		CategoryID:    p.CategoryID,
		Status:        string(p.Status),
		LowStock:      p.NeedsRestock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para o formato de resposta
func ToProductListResponse(products []*product.Product, totalCount, page, pageSize int) ProductListResponse {
	response := ProductListResponse{
		Products:   make([]ProductResponse, 0, len(products)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}

	for _, p := range products {
		response.Products = append(response.Products, ToProductResponse(p))
	}

	if pageSize > 0 {
		response.TotalPages = (totalCount + pageSize - 1) / pageSize
	}

	return response
}
