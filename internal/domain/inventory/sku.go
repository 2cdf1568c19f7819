// Package inventory contiene los value objects del motor de inventario.
package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecolosur/catalogo-api/internal/domain"
)

// FirstSKU es el primer SKU de la secuencia cuando no existen movimientos.
const FirstSKU = "P000"

// FormatSKU construye el SKU de un movimiento a partir de su número de secuencia.
// El relleno es a 3 dígitos pero la secuencia no se trunca: 1000 -> P1000.
func FormatSKU(seq int) string {
	return fmt.Sprintf("P%03d", seq)
}

// ParseSKU extrae el número de secuencia de un SKU con formato P###.
func ParseSKU(sku string) (int, error) {
	if !strings.HasPrefix(sku, "P") || len(sku) < 2 {
		return 0, fmt.Errorf("sku %q: %w", sku, domain.ErrInvalidInput)
	}
	seq, err := strconv.Atoi(sku[1:])
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("sku %q: %w", sku, domain.ErrInvalidInput)
	}
	return seq, nil
}

// NextSKU devuelve el SKU siguiente al más alto registrado.
// Con last vacío (sin movimientos previos) la secuencia inicia en P000.
func NextSKU(last string) (string, error) {
	if last == "" {
		return FirstSKU, nil
	}
	seq, err := ParseSKU(last)
	if err != nil {
		return "", err
	}
	return FormatSKU(seq + 1), nil
}
