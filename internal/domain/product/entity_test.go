package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("tenant-1", "7891000100103", "Arroz 1kg", "", 600, 1000, 10, 3, "")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, StatusActive, p.Status)
	assert.Equal(t, 10, p.Stock)

	_, err = NewProduct("", "", "Arroz 1kg", "", 0, 1000, 0, 0, "")
	require.ErrorIs(t, err, ErrEmptyTenantID)

	_, err = NewProduct("tenant-1", "", "", "", 0, 1000, 0, 0, "")
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("tenant-1", "", "Arroz 1kg", "", 0, -10, 0, 0, "")
	require.ErrorIs(t, err, ErrInvalidSalePrice)

	_, err = NewProduct("tenant-1", "", "Arroz 1kg", "", 0, 1000, -1, 0, "")
	require.ErrorIs(t, err, ErrInvalidStock)
}

func TestHasStock(t *testing.T) {
	p := &Product{Stock: 5}

	assert.True(t, p.HasStock(5))
	assert.True(t, p.HasStock(1))
	assert.False(t, p.HasStock(6))
}

func TestNeedsRestock(t *testing.T) {
	assert.True(t, (&Product{Stock: 3, MinStock: 3}).NeedsRestock())
	assert.True(t, (&Product{Stock: 0, MinStock: 1}).NeedsRestock())
	assert.False(t, (&Product{Stock: 4, MinStock: 3}).NeedsRestock())
}

func TestDeactivate(t *testing.T) {
	p := &Product{Status: StatusActive}
	p.Deactivate()
	assert.Equal(t, StatusInactive, p.Status)
	assert.False(t, p.IsActive())
}
