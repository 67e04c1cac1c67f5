package report

import (
	"context"
)

// Repository define as consultas agregadas de relatório. São projeções de
// leitura: nunca participam das transações de venda.
type Repository interface {
	// SalesTotals soma quantidade e montante das vendas do período
	SalesTotals(ctx context.Context, tenantID string, p Period) (SalesTotals, error)

	// TopProducts lista os produtos mais vendidos do período
	TopProducts(ctx context.Context, tenantID string, p Period, limit int) ([]TopProduct, error)

	// SalesPerDay agrega as vendas do período por dia
	SalesPerDay(ctx context.Context, tenantID string, p Period) ([]DailySales, error)

	// PaymentMethods agrega as vendas do período por método de pagamento
	PaymentMethods(ctx context.Context, tenantID string, p Period) ([]PaymentMethodStat, error)

	// CountProducts conta os produtos ativos do negócio
	CountProducts(ctx context.Context, tenantID string) (int, error)

	// CountLowStock conta os produtos ativos com estoque menor ou igual ao mínimo
	CountLowStock(ctx context.Context, tenantID string) (int, error)
}
