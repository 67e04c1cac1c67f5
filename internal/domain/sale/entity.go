package sale

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTaxRate é a alíquota de imposto aplicada sobre o subtotal das vendas.
// Pode ser sobrescrita via variável de ambiente TAX_RATE.
const DefaultTaxRate = 0.19

// ReturnNumberPrefix é o marcador anteposto ao número de fatura de uma devolução.
// Devoluções consomem o mesmo contador das vendas regulares.
const ReturnNumberPrefix = "DEV-"

// PaymentMethodReturn é o método de pagamento registrado em devoluções
const PaymentMethodReturn = "devolucao"

// Sale representa uma venda (ou devolução) registrada com seus itens.
// Uma venda nunca é alterada após a criação: correções são novas vendas
// compensatórias, não edições.
type Sale struct {
	ID               string      `json:"id"`
	TenantID         string      `json:"tenant_id"`
	InvoiceNumber    string      `json:"invoice_number"`
	CustomerName     string      `json:"customer_name,omitempty"`
	CustomerDocument string      `json:"customer_document,omitempty"`
	CustomerPhone    string      `json:"customer_phone,omitempty"`
	CustomerAddress  string      `json:"customer_address,omitempty"`
	Subtotal         float64     `json:"subtotal"`
	Tax              float64     `json:"tax"`
	Total            float64     `json:"total"`
	OperatorID       string      `json:"operator_id"`
	PaymentMethod    string      `json:"payment_method"`
	IsReturn         bool        `json:"is_return"`
	ReturnReason     string      `json:"return_reason,omitempty"`
	Items            []*SaleItem `json:"items,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// SaleItem representa um item de venda. A quantidade é assinada de forma
// consistente com o sinal da venda: negativa em devoluções.
type SaleItem struct {
	ID          string  `json:"id"`
	SaleID      string  `json:"sale_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"` // Preenchido em projeções de leitura
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Receipt é a projeção de leitura de uma venda para emissão de recibo,
// com os dados de exibição do negócio e do operador. Não faz parte do
// contrato transacional de escrita.
type Receipt struct {
	Sale
	TenantName     string `json:"tenant_name"`
	TenantDocument string `json:"tenant_document,omitempty"`
	TenantAddress  string `json:"tenant_address,omitempty"`
	TenantPhone    string `json:"tenant_phone,omitempty"`
	TenantEmail    string `json:"tenant_email,omitempty"`
	OperatorName   string `json:"operator_name"`
}

// CustomerInfo são os dados livres do cliente registrados na venda.
// Não há cadastro de clientes: os campos são um retrato no momento da venda.
type CustomerInfo struct {
	Name     string `json:"name,omitempty"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// NewSale monta o cabeçalho de uma venda regular com os totais calculados.
// subtotal, tax e total já devem estar consistentes (total = subtotal + tax).
func NewSale(tenantID, invoiceNumber, operatorID, paymentMethod string, customer CustomerInfo, subtotal, tax, total float64) *Sale {
	return &Sale{
		ID:               uuid.New().String(),
		TenantID:         tenantID,
		InvoiceNumber:    invoiceNumber,
		CustomerName:     customer.Name,
		CustomerDocument: customer.Document,
		CustomerPhone:    customer.Phone,
		CustomerAddress:  customer.Address,
		Subtotal:         subtotal,
		Tax:              tax,
		Total:            total,
		OperatorID:       operatorID,
		PaymentMethod:    paymentMethod,
		CreatedAt:        time.Now(),
	}
}

// NewReturn monta o cabeçalho de uma devolução. Os totais devem ser as
// magnitudes negadas da venda correspondente.
func NewReturn(tenantID, invoiceNumber, operatorID, reason string, customer CustomerInfo, subtotal, tax, total float64) *Sale {
	s := NewSale(tenantID, invoiceNumber, operatorID, PaymentMethodReturn, customer, subtotal, tax, total)
	s.IsReturn = true
	s.ReturnReason = reason
	return s
}

// AddItem adiciona um item à venda antes da persistência
func (s *Sale) AddItem(productID string, quantity int, unitPrice, subtotal float64) {
	s.Items = append(s.Items, &SaleItem{
		ID:        uuid.New().String(),
		SaleID:    s.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
	})
}
