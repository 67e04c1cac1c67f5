package report

import (
	"time"
)

// Period delimita o intervalo de datas de um relatório
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SalesTotals resume a quantidade e o montante de vendas de um período
type SalesTotals struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// TopProduct é um produto ordenado por quantidade vendida no período
type TopProduct struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Amount       float64 `json:"amount"`
}

// DailySales agrega as vendas de um dia
type DailySales struct {
	Date   time.Time `json:"date"`
	Count  int       `json:"count"`
	Amount float64   `json:"amount"`
}

// PaymentMethodStat agrega as vendas de um período por método de pagamento
type PaymentMethodStat struct {
	PaymentMethod string  `json:"payment_method"`
	Count         int     `json:"count"`
	Amount        float64 `json:"amount"`
}

// Summary é o painel consolidado de um negócio em um período
type Summary struct {
	Period         Period              `json:"period"`
	Sales          SalesTotals         `json:"sales"`
	TotalProducts  int                 `json:"total_products"`
	LowStockCount  int                 `json:"low_stock_count"`
	TopProducts    []TopProduct        `json:"top_products"`
	SalesPerDay    []DailySales        `json:"sales_per_day"`
	PaymentMethods []PaymentMethodStat `json:"payment_methods"`
}
