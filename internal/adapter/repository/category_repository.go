package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-negocios/internal/domain/category"
	"github.com/jackc/pgx/v5"
)

const categoryColumns = `id, tenant_id, name, description, created_at, updated_at`

// CategoryRepository implementa a interface category.Repository
type CategoryRepository struct {
	db Querier
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db Querier) category.Repository {
	return &CategoryRepository{db: db}
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	var c category.Category
	var description *string

	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if description != nil {
		c.Description = *description
	}

	return &c, nil
}

// Create implementa category.Repository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, tenant_id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.TenantID, c.Name, nullable(c.Description), c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}

	return nil
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, tenantID, id string) (*category.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE tenant_id = $1 AND id = $2`,
		tenantID, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return c, nil
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context, tenantID string) ([]*category.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories
		 WHERE tenant_id = $1
		 ORDER BY name`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer categorias: %w", err)
	}

	return categories, nil
}
