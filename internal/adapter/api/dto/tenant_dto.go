package dto

import (
	"time"

	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
)

// TenantRequest representa a estrutura de dados para criação/atualização de negócio
type TenantRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LogoURL  string `json:"logo_url"`
}

// TenantResponse representa a estrutura de dados de resposta para negócio
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	LogoURL   string    `json:"logo_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantListResponse representa a resposta de listagem de negócios
type TenantListResponse struct {
	Tenants    []TenantResponse `json:"tenants"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ToTenantResponse converte um modelo de domínio em uma resposta DTO
func ToTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Document:  t.Document,
		Email:     t.Email,
		Phone:     t.Phone,
		Address:   t.Address,
		LogoURL:   t.LogoURL,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTenantListResponse converte uma lista de negócios para o formato de resposta
func ToTenantListResponse(tenants []*tenant.Tenant, totalCount, page, pageSize int) TenantListResponse {
	response := TenantListResponse{
		Tenants:    make([]TenantResponse, 0, len(tenants)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}

	for _, t := range tenants {
		response.Tenants = append(response.Tenants, ToTenantResponse(t))
	}

	if pageSize > 0 {
		response.TotalPages = (totalCount + pageSize - 1) / pageSize
	}

	return response
}
