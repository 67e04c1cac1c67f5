package sequence

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotConfigured ocorre quando o negócio não possui sequência de faturamento
	ErrNotConfigured = errors.New("nenhuma sequência de faturamento configurada para este negócio")

	ErrEmptyTenantID = errors.New("tenant_id não pode ser vazio")
	ErrInvalidNumber = errors.New("próximo número deve ser maior ou igual a 1")
)

// NumberWidth é a largura do sufixo numérico do número de fatura (ex: FAC000001)
const NumberWidth = 6

// DefaultPrefix é o prefixo atribuído à sequência de um negócio recém-criado
const DefaultPrefix = "FAC"

// InvoiceSequence representa o contador de faturas de um negócio.
// Existe exatamente uma sequência por negócio ativo e o contador nunca retrocede.
type InvoiceSequence struct {
	TenantID   string    `json:"tenant_id"`
	Prefix     string    `json:"prefix"`
	NextNumber int64     `json:"next_number"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewInvoiceSequence cria a sequência inicial de um negócio
func NewInvoiceSequence(tenantID, prefix string) (*InvoiceSequence, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &InvoiceSequence{
		TenantID:   tenantID,
		Prefix:     prefix,
		NextNumber: 1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}

// Format monta o número de fatura a partir do prefixo e do número alocado
func Format(prefix string, number int64) string {
	return fmt.Sprintf("%s%0*d", prefix, NumberWidth, number)
}
