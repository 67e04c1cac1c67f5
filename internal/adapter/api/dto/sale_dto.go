package dto

import (
	"time"

	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
)

// SaleItemRequest representa um item dentro de uma venda ou devolução
type SaleItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}

// CustomerInfoRequest representa os dados opcionais do cliente na venda
type CustomerInfoRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// SaleRequest representa a estrutura de dados para registro de venda
type SaleRequest struct {
	Customer      CustomerInfoRequest `json:"customer"`
	PaymentMethod string              `json:"payment_method" binding:"required"`
	Items         []SaleItemRequest   `json:"items" binding:"required"`
}

// ReturnRequest representa a estrutura de dados para registro de devolução
type ReturnRequest struct {
	Customer CustomerInfoRequest `json:"customer"`
	Reason   string              `json:"reason"`
	Items    []SaleItemRequest   `json:"items" binding:"required"`
}

// SaleItemResponse representa um item de venda na resposta
type SaleItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// SaleResponse representa a estrutura de dados de resposta para venda
type SaleResponse struct {
	ID               string             `json:"id"`
	InvoiceNumber    string             `json:"invoice_number"`
	CustomerName     string             `json:"customer_name,omitempty"`
	CustomerDocument string             `json:"customer_document,omitempty"`
	CustomerPhone    string             `json:"customer_phone,omitempty"`
	CustomerAddress  string             `json:"customer_address,omitempty"`
	Subtotal         float64            `json:"subtotal"`
	Tax              float64            `json:"tax"`
	Total            float64            `json:"total"`
	PaymentMethod    string             `json:"payment_method"`
	IsReturn         bool               `json:"is_return"`
	ReturnReason     string             `json:"return_reason,omitempty"`
	OperatorID       string             `json:"operator_id"`
	Items            []SaleItemResponse `json:"items,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// ReceiptResponse representa o comprovante de uma venda com os dados do negócio
type ReceiptResponse struct {
	Sale           SaleResponse `json:"sale"`
	TenantName     string       `json:"tenant_name"`
	TenantDocument string       `json:"tenant_document,omitempty"`
	TenantAddress  string       `json:"tenant_address,omitempty"`
	TenantPhone    string       `json:"tenant_phone,omitempty"`
	TenantEmail    string       `json:"tenant_email,omitempty"`
	OperatorName   string       `json:"operator_name,omitempty"`
}

// SaleListResponse representa a resposta de listagem de vendas
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Limit int            `json:"limit"`
}

// ToSaleItemInputs converte os itens da requisição para a entrada do serviço
func ToSaleItemInputs(items []SaleItemRequest) []sale.ItemInput {
	inputs := make([]sale.ItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, sale.ItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return inputs
}

// ToCustomerInfo converte os dados do cliente da requisição para o domínio
func ToCustomerInfo(c CustomerInfoRequest) sale.CustomerInfo {
	return sale.CustomerInfo{
		Name:     c.Name,
		Document: c.Document,
		Phone:    c.Phone,
		Address:  c.Address,
	}
}

// ToSaleResponse converte um modelo de domínio em uma resposta DTO
func ToSaleResponse(s *sale.Sale) SaleResponse {
	response := SaleResponse{
		ID:               s.ID,
		InvoiceNumber:    s.InvoiceNumber,
		CustomerName:     s.CustomerName,
		CustomerDocument: s.CustomerDocument,
		CustomerPhone:    s.CustomerPhone,
		CustomerAddress:  s.CustomerAddress,
		Subtotal:         s.Subtotal,
		Tax:              s.Tax,
		Total:            s.Total,
		PaymentMethod:    s.PaymentMethod,
		IsReturn:         s.IsReturn,
		ReturnReason:     s.ReturnReason,
		OperatorID:       s.OperatorID,
		Items:            make([]SaleItemResponse, 0, len(s.Items)),
		CreatedAt:        s.CreatedAt,
	}

	for _, it := range s.Items {
		response.Items = append(response.Items, SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}

	return response
}

// ToReceiptResponse converte um comprovante de domínio em uma resposta DTO
func ToReceiptResponse(r *sale.Receipt) ReceiptResponse {
	return ReceiptResponse{
		Sale:           ToSaleResponse(&r.Sale),
		TenantName:     r.TenantName,
		TenantDocument: r.TenantDocument,
		TenantAddress:  r.TenantAddress,
		TenantPhone:    r.TenantPhone,
		TenantEmail:    r.TenantEmail,
		OperatorName:   r.OperatorName,
	}
}

// ToSaleListResponse converte uma lista de vendas para o formato de resposta
func ToSaleListResponse(sales []*sale.Sale, limit int) SaleListResponse {
	response := SaleListResponse{
		Sales: make([]SaleResponse, 0, len(sales)),
		Limit: limit,
	}

	for _, s := range sales {
		response.Sales = append(response.Sales, ToSaleResponse(s))
	}

	return response
}
