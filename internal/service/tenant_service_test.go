package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-negocios/internal/domain/category"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sequence"
	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
	"github.com/hugohenrick/pdv-negocios/pkg/logger"
)

func TestProvision_CriaSequenciaECategoriaPadrao(t *testing.T) {
	env := newMemEnv()
	svc := NewTenantService(env, logger.NewNop())

	novo, err := tenant.NewTenant("Mercado Central", "900123456", "dono@mercado.test", "", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Provision(context.Background(), novo))

	state := env.snapshot()

	// Negócio criado
	require.Contains(t, state.tenants, novo.ID)
	assert.Equal(t, tenant.StatusActive, state.tenants[novo.ID].Status)

	// Sequência de faturamento pronta para a primeira venda
	seq, ok := state.sequences[novo.ID]
	require.True(t, ok, "negócio provisionado sem sequência de faturamento")
	assert.Equal(t, sequence.DefaultPrefix, seq.Prefix)
	assert.Equal(t, int64(1), seq.NextNumber)

	// Categoria padrão criada
	var found *category.Category
	for _, c := range state.categories {
		if c.TenantID == novo.ID {
			found = c
		}
	}
	require.NotNil(t, found, "negócio provisionado sem categoria padrão")
	assert.Equal(t, category.DefaultName, found.Name)
}

func TestProvision_PrimeiraVendaUsaPrefixoPadrao(t *testing.T) {
	env := newMemEnv()
	svc := NewTenantService(env, logger.NewNop())

	novo, err := tenant.NewTenant("Loja Norte", "", "", "", "", "")
	require.NoError(t, err)
	require.NoError(t, svc.Provision(context.Background(), novo))

	seedProduct(env, novo.ID, productA, "Arroz 1kg", 1000, 10)

	saleSvc := NewSaleService(env, &memSaleReader{env: env}, logger.NewNop(), 0)
	receipt, err := saleSvc.CreateSale(context.Background(), novo.ID, testOperator,
		saleInput(sale.ItemInput{ProductID: productA, Quantity: 1, UnitPrice: 1000}))
	require.NoError(t, err)

	assert.Equal(t, "FAC000001", receipt.InvoiceNumber)
}
