package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pdv-negocios/internal/domain/report"
)

// ReportRepository implementa a interface report.Repository
type ReportRepository struct {
	db Querier
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db Querier) report.Repository {
	return &ReportRepository{db: db}
}

// SalesTotals implementa report.Repository.SalesTotals
func (r *ReportRepository) SalesTotals(ctx context.Context, tenantID string, p report.Period) (report.SalesTotals, error) {
	var totals report.SalesTotals

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0)
		 FROM sales
		 WHERE tenant_id = $1 AND created_at >= $2 AND created_at < $3`,
		tenantID, p.Start, p.End).Scan(&totals.Count, &totals.Amount)

	if err != nil {
		return report.SalesTotals{}, fmt.Errorf("erro ao totalizar vendas: %w", err)
	}

	return totals, nil
}

// TopProducts implementa report.Repository.TopProducts
func (r *ReportRepository) TopProducts(ctx context.Context, tenantID string, p report.Period, limit int) ([]report.TopProduct, error) {
	rows, err := r.db.Query(ctx,
		`SELECT si.product_id, pr.name, SUM(si.quantity), SUM(si.subtotal)
		 FROM sale_items si
		 JOIN sales s ON s.id = si.sale_id
		 JOIN products pr ON pr.id = si.product_id
		 WHERE s.tenant_id = $1 AND s.is_return = FALSE
		   AND s.created_at >= $2 AND s.created_at < $3
		 GROUP BY si.product_id, pr.name
		 ORDER BY SUM(si.quantity) DESC
		 LIMIT $4`,
		tenantID, p.Start, p.End, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos mais vendidos: %w", err)
	}
	defer rows.Close()

	products := make([]report.TopProduct, 0)
	for rows.Next() {
		var tp report.TopProduct
		if err := rows.Scan(&tp.ProductID, &tp.ProductName, &tp.QuantitySold, &tp.Amount); err != nil {
			return nil, fmt.Errorf("erro ao ler produto mais vendido: %w", err)
		}
		products = append(products, tp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos mais vendidos: %w", err)
	}

	return products, nil
}

// SalesPerDay implementa report.Repository.SalesPerDay
func (r *ReportRepository) SalesPerDay(ctx context.Context, tenantID string, p report.Period) ([]report.DailySales, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*), COALESCE(SUM(total), 0)
		 FROM sales
		 WHERE tenant_id = $1 AND created_at >= $2 AND created_at < $3
		 GROUP BY day
		 ORDER BY day`,
		tenantID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas por dia: %w", err)
	}
	defer rows.Close()

	days := make([]report.DailySales, 0)
	for rows.Next() {
		var d report.DailySales
		if err := rows.Scan(&d.Date, &d.Count, &d.Amount); err != nil {
			return nil, fmt.Errorf("erro ao ler vendas do dia: %w", err)
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas por dia: %w", err)
	}

	return days, nil
}

// PaymentMethods implementa report.Repository.PaymentMethods
func (r *ReportRepository) PaymentMethods(ctx context.Context, tenantID string, p report.Period) ([]report.PaymentMethodStat, error) {
	rows, err := r.db.Query(ctx,
		`SELECT payment_method, COUNT(*), COALESCE(SUM(total), 0)
		 FROM sales
		 WHERE tenant_id = $1 AND created_at >= $2 AND created_at < $3
		 GROUP BY payment_method
		 ORDER BY COUNT(*) DESC`,
		tenantID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas por método de pagamento: %w", err)
	}
	defer rows.Close()

	stats := make([]report.PaymentMethodStat, 0)
	for rows.Next() {
		var s report.PaymentMethodStat
		if err := rows.Scan(&s.PaymentMethod, &s.Count, &s.Amount); err != nil {
			return nil, fmt.Errorf("erro ao ler método de pagamento: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer métodos de pagamento: %w", err)
	}

	return stats, nil
}

// CountProducts implementa report.Repository.CountProducts
func (r *ReportRepository) CountProducts(ctx context.Context, tenantID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE tenant_id = $1 AND status = 'active'`,
		tenantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// CountLowStock implementa report.Repository.CountLowStock
func (r *ReportRepository) CountLowStock(ctx context.Context, tenantID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products
		 WHERE tenant_id = $1 AND status = 'active' AND stock <= min_stock`,
		tenantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos com estoque baixo: %w", err)
	}

	return count, nil
}
