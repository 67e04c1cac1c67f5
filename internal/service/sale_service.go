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

// SaleService orquestra vendas e devoluções. Cada operação de escrita executa
// dentro de uma única unidade de trabalho: validação de estoque, alocação do
// número de fatura, gravação do cabeçalho e itens e movimentação de estoque
// fazem commit juntos ou são desfeitos juntos.
type SaleService struct {
	uow     repository.UnitOfWork
	sales   sale.Repository
	log     logger.Logger
	taxRate float64
}

// NewSaleService cria uma nova instância de SaleService. O repositório de
// vendas é usado apenas para as projeções de leitura, fora das transações.
func NewSaleService(uow repository.UnitOfWork, sales sale.Repository, log logger.Logger, taxRate float64) sale.Service {
	if taxRate <= 0 {
		taxRate = sale.DefaultTaxRate
	}

	return &SaleService{
		uow:     uow,
		sales:   sales,
		log:     log,
		taxRate: taxRate,
	}
}

// CreateSale registra uma venda conforme o contrato de sale.Service
func (s *SaleService) CreateSale(ctx context.Context, tenantID, operatorID string, in sale.CreateSaleInput) (*sale.Receipt, error) {
	if tenantID == "" {
		return nil, tenant.ErrTenantNotSpecified
	}

	if len(in.Items) == 0 {
		return nil, sale.ErrEmptyItems
	}

	// Validação de forma antes de abrir qualquer transação
	for _, item := range in.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	var saleID string

	err := s.uow.WithinTx(ctx, func(st repository.Stores) error {
		// 1. Validar a disponibilidade de cada item na ordem de entrada.
		// FindForSale bloqueia a linha do produto até o fim da transação,
		// fechando a janela entre a validação e a baixa de estoque.
		for _, item := range in.Items {
			p, err := st.Products().FindForSale(ctx, tenantID, item.ProductID)
			if err != nil {
				if errors.Is(err, product.ErrProductNotFound) {
					return &sale.ProductNotFoundError{ProductID: item.ProductID}
				}
				return fmt.Errorf("erro ao validar estoque: %w", err)
			}

			if !p.HasStock(item.Quantity) {
				return &sale.InsufficientStockError{
					ProductName: p.Name,
					Available:   p.Stock,
					Requested:   item.Quantity,
				}
			}
		}

		// 2. Somente após todos os itens validados: alocar o número da fatura.
		// Uma venda que falha na validação nunca consome número.
		invoiceNumber, err := st.Sequences().AllocateNext(ctx, tenantID)
		if err != nil {
			return err
		}

		// 3. Calcular os totais
		var subtotal float64
		for _, item := range in.Items {
			subtotal += float64(item.Quantity) * item.UnitPrice
		}
		tax := subtotal * s.taxRate
		total := subtotal + tax

		// 4. Gravar o cabeçalho da venda
		v := sale.NewSale(tenantID, invoiceNumber, operatorID, in.PaymentMethod, in.Customer, subtotal, tax, total)
		if err := st.Sales().Create(ctx, v); err != nil {
			return fmt.Errorf("erro ao gravar venda: %w", err)
		}

		// 5. Gravar os itens e dar baixa no estoque
		for _, item := range in.Items {
			v.AddItem(item.ProductID, item.Quantity, item.UnitPrice, float64(item.Quantity)*item.UnitPrice)
			if err := st.Sales().CreateItem(ctx, v.Items[len(v.Items)-1]); err != nil {
				return fmt.Errorf("erro ao gravar item da venda: %w", err)
			}

			newStock, err := st.Products().DecrementStock(ctx, tenantID, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("erro ao dar baixa no estoque: %w", err)
			}

			s.log.Debug("estoque atualizado",
				"tenant_id", tenantID,
				"product_id", item.ProductID,
				"quantity", item.Quantity,
				"new_stock", newStock,
			)
		}

		saleID = v.ID
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.log.Info("venda registrada",
		"tenant_id", tenantID,
		"sale_id", saleID,
		"operator_id", operatorID,
	)

	// 6. Projeção de leitura para emissão do recibo, fora da transação de escrita
	return s.sales.FindReceipt(ctx, tenantID, saleID)
}

// CreateReturn registra uma devolução conforme o contrato de sale.Service
func (s *SaleService) CreateReturn(ctx context.Context, tenantID, operatorID string, in sale.CreateReturnInput) (*sale.Receipt, error) {
	if tenantID == "" {
		return nil, tenant.ErrTenantNotSpecified
	}

	if len(in.Items) == 0 {
		return nil, sale.ErrEmptyReturn
	}

	for _, item := range in.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	var saleID string

	err := s.uow.WithinTx(ctx, func(st repository.Stores) error {
		// Devoluções não exigem verificação de disponibilidade: o estoque
		// aumenta. O número consome o mesmo contador das vendas regulares,
		// marcado com o prefixo de devolução.
		invoiceNumber, err := st.Sequences().AllocateNext(ctx, tenantID)
		if err != nil {
			return err
		}
		returnNumber := sale.ReturnNumberPrefix + invoiceNumber

		// Totais como magnitudes negadas
		var subtotal float64
		for _, item := range in.Items {
			subtotal += float64(item.Quantity) * item.UnitPrice
		}
		subtotal = -subtotal
		tax := subtotal * s.taxRate
		total := subtotal + tax

		v := sale.NewReturn(tenantID, returnNumber, operatorID, in.Reason, in.Customer, subtotal, tax, total)
		if err := st.Sales().Create(ctx, v); err != nil {
			return fmt.Errorf("erro ao gravar devolução: %w", err)
		}

		for _, item := range in.Items {
			// Quantidades e subtotais dos itens são assinados de forma
			// consistente com o sinal da devolução
			v.AddItem(item.ProductID, -item.Quantity, item.UnitPrice, -float64(item.Quantity)*item.UnitPrice)
			if err := st.Sales().CreateItem(ctx, v.Items[len(v.Items)-1]); err != nil {
				return fmt.Errorf("erro ao gravar item da devolução: %w", err)
			}

			newStock, err := st.Products().IncrementStock(ctx, tenantID, item.ProductID, item.Quantity)
			if err != nil {
				if errors.Is(err, product.ErrProductNotFound) {
					return &sale.ProductNotFoundError{ProductID: item.ProductID}
				}
				return fmt.Errorf("erro ao devolver estoque: %w", err)
			}

			s.log.Debug("estoque devolvido",
				"tenant_id", tenantID,
				"product_id", item.ProductID,
				"quantity", item.Quantity,
				"new_stock", newStock,
			)
		}

		saleID = v.ID
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.log.Info("devolução registrada",
		"tenant_id", tenantID,
		"sale_id", saleID,
		"operator_id", operatorID,
	)

	return s.sales.FindReceipt(ctx, tenantID, saleID)
}

// ListRecent lista as vendas mais recentes do negócio
func (s *SaleService) ListRecent(ctx context.Context, tenantID string, limit int) ([]*sale.Sale, error) {
	if tenantID == "" {
		return nil, tenant.ErrTenantNotSpecified
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	return s.sales.FindRecent(ctx, tenantID, limit)
}

// GetReceipt retorna a projeção de recibo de uma venda
func (s *SaleService) GetReceipt(ctx context.Context, tenantID, saleID string) (*sale.Receipt, error) {
	if tenantID == "" {
		return nil, tenant.ErrTenantNotSpecified
	}

	return s.sales.FindReceipt(ctx, tenantID, saleID)
}

var _ sale.Service = (*SaleService)(nil)
