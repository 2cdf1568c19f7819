package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta que descuenta stock. Inmutable después de creada.
// SoldPrice es el precio al momento de la venta, independiente del precio
// actual del producto.
type Sale struct {
	ID        string
	ProductID string
	Quantity  int64 // unidades vendidas, siempre positivo
	SoldPrice decimal.Decimal
	CreatedAt time.Time
}
