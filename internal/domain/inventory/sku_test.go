package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolosur/catalogo-api/internal/domain/inventory"
)

func TestFormatSKU_RellenoTresDigitos(t *testing.T) {
	assert.Equal(t, "P000", inventory.FormatSKU(0))
	assert.Equal(t, "P007", inventory.FormatSKU(7))
	assert.Equal(t, "P042", inventory.FormatSKU(42))
	assert.Equal(t, "P999", inventory.FormatSKU(999))
	// Más allá de 999 la secuencia no se trunca
	assert.Equal(t, "P1000", inventory.FormatSKU(1000))
}

func TestParseSKU_RoundTrip(t *testing.T) {
	for _, seq := range []int{0, 1, 32, 999, 1000} {
		got, err := inventory.ParseSKU(inventory.FormatSKU(seq))
		require.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}

func TestParseSKU_Invalido(t *testing.T) {
	for _, sku := range []string{"", "P", "X001", "P-1", "Pabc", "001"} {
		_, err := inventory.ParseSKU(sku)
		assert.Error(t, err, "sku %q debe ser inválido", sku)
	}
}

func TestNextSKU_SinMovimientosPrevios(t *testing.T) {
	got, err := inventory.NextSKU("")
	require.NoError(t, err)
	assert.Equal(t, "P000", got)
}

func TestNextSKU_Secuencia(t *testing.T) {
	sku := ""
	for i := 0; i < 5; i++ {
		next, err := inventory.NextSKU(sku)
		require.NoError(t, err)
		assert.Equal(t, inventory.FormatSKU(i), next)
		sku = next
	}
}
