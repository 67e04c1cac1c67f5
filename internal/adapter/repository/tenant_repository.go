package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório
var (
	ErrTenantNotFound = errors.New("negócio não encontrado")
)

const tenantColumns = `id, name, document, email, phone, address, logo_url, status,
		created_at, updated_at`

// TenantRepository implementa a interface tenant.Repository
type TenantRepository struct {
	db Querier
}

// NewTenantRepository cria uma nova instância de TenantRepository
func NewTenantRepository(db Querier) tenant.Repository {
	return &TenantRepository{db: db}
}

func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	var t tenant.Tenant
	var document, email, phone, address, logoURL *string

	err := row.Scan(&t.ID, &t.Name, &document, &email, &phone, &address,
		&logoURL, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if document != nil {
		t.Document = *document
	}
	if email != nil {
		t.Email = *email
	}
	if phone != nil {
		t.Phone = *phone
	}
	if address != nil {
		t.Address = *address
	}
	if logoURL != nil {
		t.LogoURL = *logoURL
	}

	return &t, nil
}

// Create implementa tenant.Repository.Create
func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tenants (id, name, document, email, phone, address, logo_url,
			status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.Name, nullable(t.Document), nullable(t.Email), nullable(t.Phone),
		nullable(t.Address), nullable(t.LogoURL), t.Status, t.CreatedAt, t.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar negócio: %w", err)
	}

	return nil
}

// FindByID implementa tenant.Repository.FindByID
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := scanTenant(r.db.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = $1`,
		id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("erro ao buscar negócio: %w", err)
	}

	return t, nil
}

// List implementa tenant.Repository.List
func (r *TenantRepository) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tenantColumns+` FROM tenants
		 WHERE status = 'active'
		 ORDER BY name
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar negócios: %w", err)
	}
	defer rows.Close()

	tenants := make([]*tenant.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler negócio: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer negócios: %w", err)
	}

	return tenants, nil
}

// Update implementa tenant.Repository.Update
func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tenants
		 SET name = $1, document = $2, email = $3, phone = $4, address = $5,
		     logo_url = $6, updated_at = NOW()
		 WHERE id = $7`,
		t.Name, nullable(t.Document), nullable(t.Email), nullable(t.Phone),
		nullable(t.Address), nullable(t.LogoURL), t.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar negócio: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// Delete implementa tenant.Repository.Delete (exclusão lógica)
func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tenants SET status = 'inactive', updated_at = NOW() WHERE id = $1`,
		id)

	if err != nil {
		return fmt.Errorf("erro ao desativar negócio: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// Exists implementa tenant.Repository.Exists
func (r *TenantRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1 AND status = 'active')`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do negócio: %w", err)
	}

	return exists, nil
}

// Count implementa tenant.Repository.Count
func (r *TenantRepository) Count(ctx context.Context) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tenants WHERE status = 'active'`).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar negócios: %w", err)
	}

	return count, nil
}
