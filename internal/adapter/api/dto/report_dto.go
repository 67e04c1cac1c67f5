package dto

import (
	"github.com/hugohenrick/pdv-negocios/internal/domain/report"
)

// SummaryResponse representa o painel consolidado de um negócio
type SummaryResponse struct {
	Period         report.Period              `json:"period"`
	Sales          report.SalesTotals         `json:"sales"`
	TotalProducts  int                        `json:"total_products"`
	LowStockCount  int                        `json:"low_stock_count"`
	TopProducts    []report.TopProduct        `json:"top_products"`
	SalesPerDay    []report.DailySales        `json:"sales_per_day"`
	PaymentMethods []report.PaymentMethodStat `json:"payment_methods"`
}

// ToSummaryResponse converte um resumo de domínio em uma resposta DTO
func ToSummaryResponse(s *report.Summary) SummaryResponse {
	return SummaryResponse{
		Period:         s.Period,
		Sales:          s.Sales,
		TotalProducts:  s.TotalProducts,
		LowStockCount:  s.LowStockCount,
		TopProducts:    s.TopProducts,
		SalesPerDay:    s.SalesPerDay,
		PaymentMethods: s.PaymentMethods,
	}
}
