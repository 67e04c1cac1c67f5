package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/jackc/pgx/v5"
)

const saleColumns = `id, tenant_id, invoice_number, customer_name, customer_document,
		customer_phone, customer_address, subtotal, tax, total, operator_id,
		payment_method, is_return, return_reason, created_at`

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db Querier
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db Querier) sale.Repository {
	return &SaleRepository{db: db}
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	var customerName, customerDocument, customerPhone, customerAddress, returnReason *string

	err := row.Scan(&s.ID, &s.TenantID, &s.InvoiceNumber, &customerName,
		&customerDocument, &customerPhone, &customerAddress, &s.Subtotal,
		&s.Tax, &s.Total, &s.OperatorID, &s.PaymentMethod, &s.IsReturn,
		&returnReason, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if customerName != nil {
		s.CustomerName = *customerName
	}
	if customerDocument != nil {
		s.CustomerDocument = *customerDocument
	}
	if customerPhone != nil {
		s.CustomerPhone = *customerPhone
	}
	if customerAddress != nil {
		s.CustomerAddress = *customerAddress
	}
	if returnReason != nil {
		s.ReturnReason = *returnReason
	}

	return &s, nil
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (id, tenant_id, invoice_number, customer_name, customer_document,
			customer_phone, customer_address, subtotal, tax, total, operator_id,
			payment_method, is_return, return_reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		s.ID, s.TenantID, s.InvoiceNumber, nullable(s.CustomerName),
		nullable(s.CustomerDocument), nullable(s.CustomerPhone),
		nullable(s.CustomerAddress), s.Subtotal, s.Tax, s.Total, s.OperatorID,
		s.PaymentMethod, s.IsReturn, nullable(s.ReturnReason), s.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return nil
}

// CreateItem implementa sale.Repository.CreateItem
func (r *SaleRepository) CreateItem(ctx context.Context, item *sale.SaleItem) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, subtotal)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)

	if err != nil {
		return fmt.Errorf("erro ao inserir item da venda: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, tenantID, id string) (*sale.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1 AND tenant_id = $2`,
		id, tenantID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	items, err := r.findItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return s, nil
}

// FindRecent implementa sale.Repository.FindRecent
func (r *SaleRepository) FindRecent(ctx context.Context, tenantID string, limit int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		 WHERE tenant_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

// FindByPeriod implementa sale.Repository.FindByPeriod
func (r *SaleRepository) FindByPeriod(ctx context.Context, tenantID string, start, end time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		 WHERE tenant_id = $1 AND created_at BETWEEN $2 AND $3
		 ORDER BY created_at ASC`,
		tenantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do período: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

// FindReceipt implementa sale.Repository.FindReceipt
func (r *SaleRepository) FindReceipt(ctx context.Context, tenantID, id string) (*sale.Receipt, error) {
	var rec sale.Receipt
	var customerName, customerDocument, customerPhone, customerAddress, returnReason *string
	var tenantDocument, tenantAddress, tenantPhone, tenantEmail *string

	err := r.db.QueryRow(ctx,
		`SELECT v.id, v.tenant_id, v.invoice_number, v.customer_name, v.customer_document,
			v.customer_phone, v.customer_address, v.subtotal, v.tax, v.total,
			v.operator_id, v.payment_method, v.is_return, v.return_reason, v.created_at,
			t.name, t.document, t.address, t.phone, t.email,
			u.name
		 FROM sales v
		 JOIN tenants t ON v.tenant_id = t.id
		 JOIN users u ON v.operator_id = u.id
		 WHERE v.id = $1 AND v.tenant_id = $2`,
		id, tenantID).Scan(
		&rec.ID, &rec.TenantID, &rec.InvoiceNumber, &customerName, &customerDocument,
		&customerPhone, &customerAddress, &rec.Subtotal, &rec.Tax, &rec.Total,
		&rec.OperatorID, &rec.PaymentMethod, &rec.IsReturn, &returnReason, &rec.CreatedAt,
		&rec.TenantName, &tenantDocument, &tenantAddress, &tenantPhone, &tenantEmail,
		&rec.OperatorName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao montar recibo: %w", err)
	}

	if customerName != nil {
		rec.CustomerName = *customerName
	}
	if customerDocument != nil {
		rec.CustomerDocument = *customerDocument
	}
	if customerPhone != nil {
		rec.CustomerPhone = *customerPhone
	}
	if customerAddress != nil {
		rec.CustomerAddress = *customerAddress
	}
	if returnReason != nil {
		rec.ReturnReason = *returnReason
	}
	if tenantDocument != nil {
		rec.TenantDocument = *tenantDocument
	}
	if tenantAddress != nil {
		rec.TenantAddress = *tenantAddress
	}
	if tenantPhone != nil {
		rec.TenantPhone = *tenantPhone
	}
	if tenantEmail != nil {
		rec.TenantEmail = *tenantEmail
	}

	items, err := r.findItems(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Items = items

	return &rec, nil
}

// findItems busca os itens de uma venda com o nome do produto para exibição
func (r *SaleRepository) findItems(ctx context.Context, saleID string) ([]*sale.SaleItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.sale_id, i.product_id, p.name, i.quantity, i.unit_price, i.subtotal
		 FROM sale_items i
		 JOIN products p ON i.product_id = p.id
		 WHERE i.sale_id = $1
		 ORDER BY p.name`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	items := make([]*sale.SaleItem, 0)
	for rows.Next() {
		var item sale.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer itens da venda: %w", err)
	}

	return items, nil
}

func collectSales(rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)

	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}

	return sales, nil
}
