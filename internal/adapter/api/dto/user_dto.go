package dto

import (
	"time"

	"github.com/hugohenrick/pdv-negocios/internal/domain/user"
)

// UserRequest representa a estrutura de dados para criação de usuário
type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
	TenantID string `json:"tenant_id"`
}

// UserUpdateRequest representa a estrutura de dados para atualização de usuário
type UserUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// UserResponse representa a estrutura de dados de resposta para usuário
type UserResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse representa a resposta de listagem de usuários
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ToUserResponse converte um modelo de domínio em uma resposta DTO
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários para o formato de resposta
func ToUserListResponse(users []*user.User, page, pageSize int) UserListResponse {
	response := UserListResponse{
		Users:    make([]UserResponse, 0, len(users)),
		Page:     page,
		PageSize: pageSize,
	}

	for _, u := range users {
		response.Users = append(response.Users, ToUserResponse(u))
	}

	return response
}
