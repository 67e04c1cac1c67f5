package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sequence"
	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
	"github.com/hugohenrick/pdv-negocios/pkg/logger"
	pkgtenant "github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

const (
	testTenant   = "11111111-1111-1111-1111-111111111111"
	otherTenant  = "22222222-2222-2222-2222-222222222222"
	testOperator = "99999999-9999-9999-9999-999999999999"
	productA     = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	productB     = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

func newSaleTestEnv(t *testing.T) (*memEnv, sale.Service) {
	t.Helper()

	env := newMemEnv()
	env.seed(func(s *memState) {
		s.tenants[testTenant] = &tenant.Tenant{
			ID:     testTenant,
			Name:   "Mercado Central",
			Status: tenant.StatusActive,
		}
		s.sequences[testTenant] = &sequence.InvoiceSequence{
			TenantID:   testTenant,
			Prefix:     "FAC",
			NextNumber: 1,
		}
	})

	svc := NewSaleService(env, &memSaleReader{env: env}, logger.NewNop(), 0)
	return env, svc
}

func seedProduct(env *memEnv, tenantID, id, name string, price float64, stock int) {
	env.seed(func(s *memState) {
		s.products[productKey(tenantID, id)] = &product.Product{
			ID:        id,
			TenantID:  tenantID,
			Name:      name,
			SalePrice: price,
			Stock:     stock,
			MinStock:  1,
			Status:    product.StatusActive,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	})
}

func saleInput(items ...sale.ItemInput) sale.CreateSaleInput {
	return sale.CreateSaleInput{
		Customer:      sale.CustomerInfo{Name: "Cliente Avulso"},
		PaymentMethod: "efectivo",
		Items:         items,
	}
}

func TestCreateSale_CalculaTotaisEAlocaFatura(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 10)

	receipt, err := svc.CreateSale(context.Background(), testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 3, UnitPrice: 1000}))
	require.NoError(t, err)

	assert.Equal(t, "FAC000001", receipt.InvoiceNumber)
	assert.InDelta(t, 3000.0, receipt.Subtotal, 0.0001)
	assert.InDelta(t, 570.0, receipt.Tax, 0.0001)
	assert.InDelta(t, 3570.0, receipt.Total, 0.0001)
	assert.False(t, receipt.IsReturn)
	assert.Equal(t, "Mercado Central", receipt.TenantName)

	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 3, receipt.Items[0].Quantity)
	assert.InDelta(t, 3000.0, receipt.Items[0].Subtotal, 0.0001)

	// Estoque baixado e contador avançado
	state := env.snapshot()
	assert.Equal(t, 7, state.products[productKey(testTenant, productA)].Stock)
	assert.Equal(t, int64(2), state.sequences[testTenant].NextNumber)
}

func TestCreateSale_NumerosSequenciaisPorNegocio(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 500, 100)

	// Outro negócio com a própria sequência
	env.seed(func(s *memState) {
		s.tenants[otherTenant] = &tenant.Tenant{ID: otherTenant, Name: "Loja Norte", Status: tenant.StatusActive}
		s.sequences[otherTenant] = &sequence.InvoiceSequence{TenantID: otherTenant, Prefix: "FAC", NextNumber: 1}
	})
	seedProduct(env, otherTenant, productB, "Feijão 1kg", 800, 100)

	first, err := svc.CreateSale(context.Background(), testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: 500}))
	require.NoError(t, err)

	second, err := svc.CreateSale(context.Background(), testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: 500}))
	require.NoError(t, err)

	// O contador do outro negócio não foi consumido
	other, err := svc.CreateSale(context.Background(), otherTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productB, Quantity: 1, UnitPrice: 800}))
	require.NoError(t, err)

	assert.Equal(t, "FAC000001", first.InvoiceNumber)
	assert.Equal(t, "FAC000002", second.InvoiceNumber)
	assert.Equal(t, "FAC000001", other.InvoiceNumber)
}

func TestCreateSale_EstoqueInsuficienteNaoDeixaEfeitos(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 10)
	seedProduct(env, testTenant, productB, "Feijão 1kg", 800, 2)

	// O primeiro item é válido; o segundo excede o estoque. Nada pode persistir.
	_, err := svc.CreateSale(context.Background(), testTenant, testOperator,
		saleInput(
			sale.ItemInput{ProductID: productA, Quantity: 3, UnitPrice: 1000},
			sale.ItemInput{ProductID: productB, Quantity: 5, UnitPrice: 800},
		))

	var insufficient *sale.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Feijão 1kg", insufficient.ProductName)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)

	state := env.snapshot()
	assert.Equal(t, 10, state.products[productKey(testTenant, productA)].Stock)
	assert.Equal(t, 2, state.products[productKey(testTenant, productB)].Stock)
	assert.Empty(t, state.sales)

	// Venda recusada não consome número de fatura
	assert.Equal(t, int64(1), state.sequences[testTenant].NextNumber)
}

func TestCreateSale_ProdutoInexistente(t *testing.T) {
	_, svc := newSaleTestEnv(t)

	_, err := svc.CreateSale(context.Background(), testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: 100}))

	var notFound *sale.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, productA, notFound.ProductID)
}

func TestCreateSale_ProdutoDeOutroNegocioNaoEVisivel(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, otherTenant, productA, "Arroz 1kg", 1000, 10)

	_, err := svc.CreateSale(context.Background(), testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: 1000}))

	var notFound *sale.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCreateSale_SemSequenciaConfigurada(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	env.seed(func(s *memState) {
		delete(s.sequences, testTenant)
	})
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 10)

	_, err := svc.CreateSale(context.Background(), testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: 1000}))
	require.ErrorIs(t, err, sequence.ErrNotConfigured)

	// A falha na alocação não pode deixar venda nem baixa de estoque
	state := env.snapshot()
	assert.Empty(t, state.sales)
	assert.Equal(t, 10, state.products[productKey(testTenant, productA)].Stock)
}

func TestCreateSale_EntradasInvalidas(t *testing.T) {
	_, svc := newSaleTestEnv(t)
	ctx := context.Background()

	_, err := svc.CreateSale(ctx, "", testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: 100}))
	require.ErrorIs(t, err, pkgtenant.ErrTenantNotSpecified)

	_, err = svc.CreateSale(ctx, testTenant, testOperator, saleInput())
	require.ErrorIs(t, err, sale.ErrEmptyItems)

	_, err = svc.CreateSale(ctx, testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 0, UnitPrice: 100}))
	require.ErrorIs(t, err, sale.ErrInvalidQuantity)

	_, err = svc.CreateSale(ctx, testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: -5}))
	require.ErrorIs(t, err, sale.ErrInvalidUnitPrice)
}

func TestCreateSale_ConcorrenciaSobreOMesmoEstoque(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 6)

	// Duas vendas simultâneas de 6 unidades disputando 6 em estoque:
	// exatamente uma deve vencer.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateSale(context.Background(), testTenant, testOperator,
				saleInput(sale.ItemInput{ProductID: productA, Quantity: 6, UnitPrice: 1000}))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			var insufficient *sale.InsufficientStockError
			require.ErrorAs(t, err, &insufficient)
		}
	}
	assert.Equal(t, 1, succeeded)

	state := env.snapshot()
	assert.Equal(t, 0, state.products[productKey(testTenant, productA)].Stock)
	assert.Len(t, state.sales, 1)
	assert.Equal(t, int64(2), state.sequences[testTenant].NextNumber)
}

func TestCreateReturn_DevolveEstoqueEGravaTotaisNegativos(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 10)

	_, err := svc.CreateSale(context.Background(), testTenant, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 3, UnitPrice: 1000}))
	require.NoError(t, err)

	receipt, err := svc.CreateReturn(context.Background(), testTenant, testOperator,
		sale.CreateReturnInput{
			Reason: "produto vencido",
			Items:  []sale.ItemInput{{ProductID: productA, Quantity: 3, UnitPrice: 1000}},
		})
	require.NoError(t, err)

	// A devolução consome o mesmo contador e recebe o marcador de devolução
	assert.Equal(t, "DEV-FAC000002", receipt.InvoiceNumber)
	assert.True(t, receipt.IsReturn)
	assert.Equal(t, "produto vencido", receipt.ReturnReason)
	assert.Equal(t, sale.PaymentMethodReturn, receipt.PaymentMethod)

	assert.InDelta(t, -3000.0, receipt.Subtotal, 0.0001)
	assert.InDelta(t, -570.0, receipt.Tax, 0.0001)
	assert.InDelta(t, -3570.0, receipt.Total, 0.0001)

	require.Len(t, receipt.Items, 1)
	assert.Equal(t, -3, receipt.Items[0].Quantity)
	assert.InDelta(t, -3000.0, receipt.Items[0].Subtotal, 0.0001)

	// Estoque de volta ao valor original
	state := env.snapshot()
	assert.Equal(t, 10, state.products[productKey(testTenant, productA)].Stock)
}

func TestCreateReturn_SemVerificacaoDeDisponibilidade(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 0)

	// Estoque zerado não impede a devolução
	receipt, err := svc.CreateReturn(context.Background(), testTenant, testOperator,
		sale.CreateReturnInput{
			Items: []sale.ItemInput{{ProductID: productA, Quantity: 2, UnitPrice: 1000}},
		})
	require.NoError(t, err)
	assert.True(t, receipt.IsReturn)

	state := env.snapshot()
	assert.Equal(t, 2, state.products[productKey(testTenant, productA)].Stock)
}

func TestCreateReturn_Vazia(t *testing.T) {
	_, svc := newSaleTestEnv(t)

	_, err := svc.CreateReturn(context.Background(), testTenant, testOperator, sale.CreateReturnInput{})
	require.ErrorIs(t, err, sale.ErrEmptyReturn)
}

func TestCreateReturn_ProdutoInexistenteDesfazTudo(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 5)

	_, err := svc.CreateReturn(context.Background(), testTenant, testOperator,
		sale.CreateReturnInput{
			Items: []sale.ItemInput{
				{ProductID: productA, Quantity: 1, UnitPrice: 1000},
				{ProductID: productB, Quantity: 1, UnitPrice: 500},
			},
		})

	var notFound *sale.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, productB, notFound.ProductID)

	// Rollback completo: nem a devolução parcial nem o estoque do primeiro item
	state := env.snapshot()
	assert.Empty(t, state.sales)
	assert.Equal(t, 5, state.products[productKey(testTenant, productA)].Stock)
}

func TestListRecent_LimiteEFiltroPorNegocio(t *testing.T) {
	env, svc := newSaleTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 100, 100)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSale(context.Background(), testTenant, testOperator,
			saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: 100}))
		require.NoError(t, err)
	}

	sales, err := svc.ListRecent(context.Background(), testTenant, 2)
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	// Mais recente primeiro
	assert.Equal(t, "FAC000003", sales[0].InvoiceNumber)

	_, err = svc.ListRecent(context.Background(), "", 10)
	require.ErrorIs(t, err, pkgtenant.ErrTenantNotSpecified)
}

func TestGetReceipt_VendaInexistente(t *testing.T) {
	_, svc := newSaleTestEnv(t)

	_, err := svc.GetReceipt(context.Background(), testTenant, "inexistente")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sale.ErrSaleNotFound))
}
