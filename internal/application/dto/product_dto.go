package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Slug se deriva del nombre si viene vacío. Quantity no se acepta aquí:
// el stock inicial se carga con un movimiento de inventario.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Slug        string          `json:"slug,omitempty"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    *bool           `json:"is_active,omitempty"` // default: true
	CategoryID  string          `json:"category_id"`
	UnitID      string          `json:"unit_id"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Quantity no es modificable por esta vía (solo vía ventas y movimientos).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Slug        *string          `json:"slug"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	IsActive    *bool            `json:"is_active"`
	CategoryID  *string          `json:"category_id"`
	UnitID      *string          `json:"unit_id"`
}

// ProductResponse salida de un producto (vista admin).
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	IsActive    bool            `json:"is_active"`
	CategoryID  string          `json:"category_id"`
	UnitID      string          `json:"unit_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos (vista admin).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
