package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório
var (
	ErrProductDuplicateEAN = errors.New("já existe produto com este código de barras no negócio")
)

const productColumns = `id, tenant_id, ean_code, name, description, purchase_price,
		sale_price, stock, min_stock, category_id, status, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db Querier
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db Querier) product.Repository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var eanCode, description, categoryID *string

	err := row.Scan(&p.ID, &p.TenantID, &eanCode, &p.Name, &description,
		&p.PurchasePrice, &p.SalePrice, &p.Stock, &p.MinStock, &categoryID,
		&p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if eanCode != nil {
		p.EANCode = *eanCode
	}
	if description != nil {
		p.Description = *description
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}

	return &p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (id, tenant_id, ean_code, name, description, purchase_price,
			sale_price, stock, min_stock, category_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.TenantID, nullable(p.EANCode), p.Name, nullable(p.Description),
		p.PurchasePrice, p.SalePrice, p.Stock, p.MinStock, nullable(p.CategoryID),
		p.Status, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateEAN
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, tenantID, id string) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND tenant_id = $2`,
		id, tenantID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// FindByEAN implementa product.Repository.FindByEAN
func (r *ProductRepository) FindByEAN(ctx context.Context, tenantID, eanCode string) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE tenant_id = $1 AND ean_code = $2 AND status = 'active'`,
		tenantID, eanCode))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto por EAN: %w", err)
	}

	return p, nil
}

// Search implementa product.Repository.Search
func (r *ProductRepository) Search(ctx context.Context, tenantID, term string, limit, offset int) ([]*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		 WHERE tenant_id = $1 AND status = 'active'`
	args := []any{tenantID}

	if term != "" {
		query += ` AND (name ILIKE $2 OR ean_code = $3)`
		args = append(args, "%"+term+"%", term)
	}

	query += fmt.Sprintf(` ORDER BY name LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// FindLowStock implementa product.Repository.FindLowStock
func (r *ProductRepository) FindLowStock(ctx context.Context, tenantID string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE tenant_id = $1 AND status = 'active' AND stock <= min_stock
		 ORDER BY stock ASC`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// FindForSale implementa product.Repository.FindForSale. O FOR UPDATE mantém
// a linha do produto bloqueada até o fim da transação corrente, de modo que a
// validação de estoque e a baixa posterior enxerguem o mesmo valor.
func (r *ProductRepository) FindForSale(ctx context.Context, tenantID, id string) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products
		 WHERE id = $1 AND tenant_id = $2 AND status = 'active'
		 FOR UPDATE`,
		id, tenantID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao bloquear produto: %w", err)
	}

	return p, nil
}

// DecrementStock implementa product.Repository.DecrementStock
func (r *ProductRepository) DecrementStock(ctx context.Context, tenantID, id string, quantity int) (int, error) {
	var newStock int

	err := r.db.QueryRow(ctx,
		`UPDATE products
		 SET stock = stock - $1, updated_at = NOW()
		 WHERE id = $2 AND tenant_id = $3
		 RETURNING stock`,
		quantity, id, tenantID).Scan(&newStock)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, product.ErrProductNotFound
		}
		return 0, fmt.Errorf("erro ao dar baixa no estoque: %w", err)
	}

	return newStock, nil
}

// IncrementStock implementa product.Repository.IncrementStock
func (r *ProductRepository) IncrementStock(ctx context.Context, tenantID, id string, quantity int) (int, error) {
	var newStock int

	err := r.db.QueryRow(ctx,
		`UPDATE products
		 SET stock = stock + $1, updated_at = NOW()
		 WHERE id = $2 AND tenant_id = $3
		 RETURNING stock`,
		quantity, id, tenantID).Scan(&newStock)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, product.ErrProductNotFound
		}
		return 0, fmt.Errorf("erro ao devolver estoque: %w", err)
	}

	return newStock, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products
		 SET ean_code = $1, name = $2, description = $3, purchase_price = $4,
		     sale_price = $5, min_stock = $6, category_id = $7, updated_at = NOW()
		 WHERE id = $8 AND tenant_id = $9`,
		nullable(p.EANCode), p.Name, nullable(p.Description), p.PurchasePrice,
		p.SalePrice, p.MinStock, nullable(p.CategoryID), p.ID, p.TenantID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateEAN
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete (exclusão lógica)
func (r *ProductRepository) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET status = 'inactive', updated_at = NOW()
		 WHERE id = $1 AND tenant_id = $2`,
		id, tenantID)

	if err != nil {
		return fmt.Errorf("erro ao desativar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// CountByTenant implementa product.Repository.CountByTenant
func (r *ProductRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE tenant_id = $1 AND status = 'active'`,
		tenantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

func collectProducts(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}

	return products, nil
}
