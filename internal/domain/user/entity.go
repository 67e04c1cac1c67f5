package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound  = errors.New("usuário não encontrado")
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyEmail    = errors.New("email não pode ser vazio")
	ErrShortPassword = errors.New("a senha deve ter ao menos 6 caracteres")
	ErrInvalidRole   = errors.New("papel de usuário inválido")
)

// Role representa o papel/função do usuário
type Role string

// Status representa o status do usuário
type Status string

// Constantes para Role
const (
	RoleSuperAdmin Role = "super_admin" // Operador da plataforma, enxerga todos os negócios
	RoleAdmin      Role = "admin"       // Administrador de um negócio
	RoleStaff      Role = "staff"       // Funcionário/vendedor de um negócio
)

// Constantes para Status
const (
	StatusActive   Status = "active"   // Usuário ativo
	StatusInactive Status = "inactive" // Usuário inativo
)

// User representa um usuário do sistema. Todo usuário que não é super admin
// pertence a exatamente um negócio.
type User struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id,omitempty"` // Vazio apenas para super admins
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // O campo senha não é retornado nas respostas JSON
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já aplicada com hash
func NewUser(tenantID, name, email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if email == "" {
		return nil, ErrEmptyEmail
	}

	if role != RoleSuperAdmin && role != RoleAdmin && role != RoleStaff {
		return nil, ErrInvalidRole
	}

	u := &User{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrShortPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsSuperAdmin verifica se o usuário é operador da plataforma
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdmin verifica se o usuário é administrador do seu negócio
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasAccessToTenant verifica se o usuário tem acesso ao negócio especificado.
// Super admins têm acesso a todos os negócios.
func (u *User) HasAccessToTenant(tenantID string) bool {
	if u.IsSuperAdmin() {
		return true
	}
	return u.TenantID == tenantID
}
