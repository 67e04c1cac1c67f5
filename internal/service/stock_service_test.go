package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/pkg/logger"
	pkgtenant "github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

func newStockTestEnv(t *testing.T) (*memEnv, *StockService) {
	t.Helper()

	env := newMemEnv()
	return env, NewStockService(env, logger.NewNop())
}

func TestAdjust_Reposicao(t *testing.T) {
	env, svc := newStockTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 4)

	p, err := svc.Adjust(context.Background(), testTenant, productA, 10)
	require.NoError(t, err)
	assert.Equal(t, 14, p.Stock)

	state := env.snapshot()
	assert.Equal(t, 14, state.products[productKey(testTenant, productA)].Stock)
}

func TestAdjust_AcertoNegativo(t *testing.T) {
	env, svc := newStockTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 4)

	p, err := svc.Adjust(context.Background(), testTenant, productA, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Stock)
}

func TestAdjust_NaoDeixaEstoqueNegativo(t *testing.T) {
	env, svc := newStockTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 4)

	_, err := svc.Adjust(context.Background(), testTenant, productA, -5)

	var insufficient *sale.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 4, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)

	state := env.snapshot()
	assert.Equal(t, 4, state.products[productKey(testTenant, productA)].Stock)
}

func TestAdjust_EntradasInvalidas(t *testing.T) {
	env, svc := newStockTestEnv(t)
	seedProduct(env, testTenant, productA, "Arroz 1kg", 1000, 4)

	_, err := svc.Adjust(context.Background(), "", productA, 1)
	require.ErrorIs(t, err, pkgtenant.ErrTenantNotSpecified)

	_, err = svc.Adjust(context.Background(), testTenant, productA, 0)
	require.ErrorIs(t, err, product.ErrInvalidQuantity)

	var notFound *sale.ProductNotFoundError
	_, err = svc.Adjust(context.Background(), testTenant, productB, 1)
	require.ErrorAs(t, err, &notFound)
}
