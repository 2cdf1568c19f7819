package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Quantity es el stock actual y solo se modifica vía el motor de inventario
// (ventas y movimientos); nunca por el CRUD de productos.
type Product struct {
	ID          string
	Name        string
	Slug        string // único
	Description string
	Price       decimal.Decimal // precio de venta, 2 decimales
	Quantity    int64           // stock actual
	IsActive    bool
	CategoryID  string
	UnitID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InStock indica si el producto tiene unidades disponibles.
func (p *Product) InStock() bool {
	return p.Quantity > 0
}
