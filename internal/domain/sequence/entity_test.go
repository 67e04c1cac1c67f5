package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "FAC000001", Format("FAC", 1))
	assert.Equal(t, "FAC000042", Format("FAC", 42))
	assert.Equal(t, "FAC999999", Format("FAC", 999999))

	// Acima da largura o número não é truncado
	assert.Equal(t, "FAC1000000", Format("FAC", 1000000))

	// O prefixo é livre por negócio
	assert.Equal(t, "NV-000007", Format("NV-", 7))
}

func TestNewInvoiceSequence(t *testing.T) {
	seq, err := NewInvoiceSequence("tenant-1", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefix, seq.Prefix)
	assert.Equal(t, int64(1), seq.NextNumber)

	seq, err = NewInvoiceSequence("tenant-1", "NV-")
	require.NoError(t, err)
	assert.Equal(t, "NV-", seq.Prefix)

	_, err = NewInvoiceSequence("", "FAC")
	require.ErrorIs(t, err, ErrEmptyTenantID)
}
