package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrTenantNotActive = errors.New("negócio não está ativo")
)

// Status representa o estado do negócio
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Tenant representa um negócio no sistema multi-tenant. É a raiz de agregação
// de usuários, produtos, categorias, vendas e da sequência de faturamento.
// Negócios nunca são removidos fisicamente enquanto referenciados: a exclusão
// é lógica, via status.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"` // RUC/NIT/CNPJ do negócio
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTenant cria um novo negócio
func NewTenant(name, document, email, phone, address, logoURL string) (*Tenant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Tenant{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     phone,
		Address:   address,
		LogoURL:   logoURL,
		Status:    StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// IsActive verifica se o negócio está ativo
func (t *Tenant) IsActive() bool {
	return t.Status == StatusActive
}

// Deactivate desativa o negócio (exclusão lógica)
func (t *Tenant) Deactivate() {
	t.Status = StatusInactive
	t.UpdatedAt = time.Now()
}

// Update atualiza os dados cadastrais do negócio
func (t *Tenant) Update(name, document, email, phone, address, logoURL string) error {
	if name == "" {
		return ErrEmptyName
	}

	t.Name = name
	t.Document = document
	t.Email = email
	t.Phone = phone
	t.Address = address
	t.LogoURL = logoURL
	t.UpdatedAt = time.Now()
	return nil
}
