package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/pkg/logger"
	"github.com/hugohenrick/pdv-negocios/pkg/repository"
	"github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// StockService aplica ajustes manuais de estoque (reposição e acerto de
// inventário) através do mesmo livro-razão usado pelas vendas, sempre dentro
// de uma transação com a linha do produto bloqueada.
type StockService struct {
	uow repository.UnitOfWork
	log logger.Logger
}

// NewStockService cria uma nova instância de StockService
func NewStockService(uow repository.UnitOfWork, log logger.Logger) *StockService {
	return &StockService{uow: uow, log: log}
}

// Adjust aplica um delta (positivo ou negativo) ao estoque do produto e
// retorna o produto atualizado. Um ajuste que levaria o estoque abaixo de
// zero é rejeitado sem efeitos colaterais.
func (s *StockService) Adjust(ctx context.Context, tenantID, productID string, delta int) (*product.Product, error) {
	if tenantID == "" {
		return nil, tenant.ErrTenantNotSpecified
	}

	if delta == 0 {
		return nil, product.ErrInvalidQuantity
	}

	var adjusted *product.Product

	err := s.uow.WithinTx(ctx, func(st repository.Stores) error {
		p, err := st.Products().FindForSale(ctx, tenantID, productID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				return &sale.ProductNotFoundError{ProductID: productID}
			}
			return fmt.Errorf("erro ao buscar produto: %w", err)
		}

		var newStock int
		if delta > 0 {
			newStock, err = st.Products().IncrementStock(ctx, tenantID, productID, delta)
		} else {
			if !p.HasStock(-delta) {
				return &sale.InsufficientStockError{
					ProductName: p.Name,
					Available:   p.Stock,
					Requested:   -delta,
				}
			}
			newStock, err = st.Products().DecrementStock(ctx, tenantID, productID, -delta)
		}
		if err != nil {
			return fmt.Errorf("erro ao ajustar estoque: %w", err)
		}

		p.Stock = newStock
		adjusted = p
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.log.Info("estoque ajustado",
		"tenant_id", tenantID,
		"product_id", productID,
		"delta", delta,
		"new_stock", adjusted.Stock,
	)

	return adjusted, nil
}
