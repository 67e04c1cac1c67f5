package tenant

import "errors"

// Erros comuns relacionados à resolução de tenant
var (
	// ErrTenantNotSpecified ocorre quando um ID de negócio não é fornecido
	ErrTenantNotSpecified = errors.New("negócio não especificado")

	// ErrTenantNotFound ocorre quando um negócio não é encontrado
	ErrTenantNotFound = errors.New("negócio não encontrado")

	// ErrTenantNotActive ocorre quando um negócio não está com status ativo
	ErrTenantNotActive = errors.New("negócio não está ativo")

	// ErrUserInactiveOrMissing ocorre quando o usuário autenticado não existe
	// mais ou foi desativado
	ErrUserInactiveOrMissing = errors.New("usuário não encontrado ou inativo")

	// ErrNoTenantAssigned ocorre quando o usuário não possui negócio atribuído
	ErrNoTenantAssigned = errors.New("usuário não tem negócio atribuído")
)
