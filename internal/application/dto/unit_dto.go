package dto

import "time"

// CreateUnitRequest entrada para crear una unidad de venta.
type CreateUnitRequest struct {
	Name string `json:"name"`
}

// UnitResponse salida de una unidad (vista admin).
type UnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
