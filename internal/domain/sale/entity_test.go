package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturn(t *testing.T) {
	r := NewReturn("tenant-1", "DEV-FAC000005", "op-1", "embalagem danificada",
		CustomerInfo{Name: "Maria"}, -100, -19, -119)

	assert.True(t, r.IsReturn)
	assert.Equal(t, "embalagem danificada", r.ReturnReason)
	assert.Equal(t, PaymentMethodReturn, r.PaymentMethod)
	assert.Equal(t, "DEV-FAC000005", r.InvoiceNumber)
	assert.Equal(t, "Maria", r.CustomerName)
	assert.InDelta(t, -119.0, r.Total, 0.0001)
	assert.NotEmpty(t, r.ID)
}

func TestAddItem(t *testing.T) {
	s := NewSale("tenant-1", "FAC000001", "op-1", "efectivo", CustomerInfo{}, 200, 38, 238)

	s.AddItem("prod-1", 2, 100, 200)
	require.Len(t, s.Items, 1)

	item := s.Items[0]
	assert.Equal(t, s.ID, item.SaleID)
	assert.Equal(t, "prod-1", item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.NotEmpty(t, item.ID)
}

func TestItemInputValidate(t *testing.T) {
	require.NoError(t, ItemInput{ProductID: "p", Quantity: 1, UnitPrice: 10}.Validate())
	require.ErrorIs(t, ItemInput{ProductID: "p", Quantity: 0, UnitPrice: 10}.Validate(), ErrInvalidQuantity)
	require.ErrorIs(t, ItemInput{ProductID: "p", Quantity: -1, UnitPrice: 10}.Validate(), ErrInvalidQuantity)
	require.ErrorIs(t, ItemInput{ProductID: "p", Quantity: 1, UnitPrice: -10}.Validate(), ErrInvalidUnitPrice)

	// Preço zero é aceito (brindes e cortesias)
	require.NoError(t, ItemInput{ProductID: "p", Quantity: 1, UnitPrice: 0}.Validate())
}

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{ProductName: "Arroz 1kg", Available: 2, Requested: 5}
	assert.Contains(t, err.Error(), "Arroz 1kg")
	assert.True(t, IsDomainConflict(err))

	notFound := &ProductNotFoundError{ProductID: "prod-1"}
	assert.Contains(t, notFound.Error(), "prod-1")
}
