package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrEmptyName         = errors.New("nome não pode ser vazio")
	ErrEmptyTenantID     = errors.New("tenant_id não pode ser vazio")
	ErrInvalidSalePrice  = errors.New("preço de venda deve ser maior ou igual a zero")
	ErrInvalidStock      = errors.New("estoque não pode ser negativo")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrProductNotActive  = errors.New("produto não está ativo")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// Status representa o estado do produto
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Product representa um produto do catálogo de um negócio
type Product struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	EANCode       string    `json:"ean_code,omitempty"` // Código de barras, opcional e único por negócio
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	Stock         int       `json:"stock"`
	MinStock      int       `json:"min_stock"`
	CategoryID    string    `json:"category_id,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(tenantID, eanCode, name, description string, purchasePrice, salePrice float64, stock, minStock int, categoryID string) (*Product, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	if salePrice < 0 {
		return nil, ErrInvalidSalePrice
	}

	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		EANCode:       eanCode,
		Name:          name,
		Description:   description,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		Stock:         stock,
		MinStock:      minStock,
		CategoryID:    categoryID,
		Status:        StatusActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

// IsActive verifica se o produto está ativo
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

// HasStock verifica se há estoque disponível para a quantidade solicitada
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// NeedsRestock verifica se o produto atingiu o estoque mínimo
func (p *Product) NeedsRestock() bool {
	return p.Stock <= p.MinStock
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(eanCode, name, description string, purchasePrice, salePrice float64, minStock int, categoryID string) error {
	if name == "" {
		return ErrEmptyName
	}

	if salePrice < 0 {
		return ErrInvalidSalePrice
	}

	p.EANCode = eanCode
	p.Name = name
	p.Description = description
	p.PurchasePrice = purchasePrice
	p.SalePrice = salePrice
	p.MinStock = minStock
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate desativa o produto (exclusão lógica)
func (p *Product) Deactivate() {
	p.Status = StatusInactive
	p.UpdatedAt = time.Now()
}
