package sale

import (
	"context"
)

// ItemInput representa um item informado em uma venda ou devolução
type ItemInput struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Validate valida a forma de um item antes de qualquer transação ser aberta
func (i ItemInput) Validate() error {
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if i.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}

	return nil
}

// CreateSaleInput são os dados de entrada para registrar uma venda
type CreateSaleInput struct {
	Customer      CustomerInfo `json:"customer"`
	PaymentMethod string       `json:"payment_method"`
	Items         []ItemInput  `json:"items"`
}

// CreateReturnInput são os dados de entrada para registrar uma devolução
type CreateReturnInput struct {
	Customer CustomerInfo `json:"customer"`
	Reason   string       `json:"reason"`
	Items    []ItemInput  `json:"items"`
}

// Service orquestra as operações transacionais de vendas e devoluções.
// Cada operação executa como uma única unidade atômica: ou a venda inteira
// é registrada (cabeçalho, itens, número de fatura e baixa de estoque) ou
// nada é persistido.
type Service interface {
	// CreateSale registra uma venda para o negócio informado
	CreateSale(ctx context.Context, tenantID, operatorID string, in CreateSaleInput) (*Receipt, error)

	// CreateReturn registra uma devolução, devolvendo o estoque e gravando
	// totais negativos
	CreateReturn(ctx context.Context, tenantID, operatorID string, in CreateReturnInput) (*Receipt, error)

	// ListRecent lista as vendas mais recentes do negócio
	ListRecent(ctx context.Context, tenantID string, limit int) ([]*Sale, error)

	// GetReceipt retorna a projeção de recibo de uma venda
	GetReceipt(ctx context.Context, tenantID, saleID string) (*Receipt, error)
}
