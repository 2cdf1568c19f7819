package entity

import "time"

// Unit representa la unidad de venta de un producto (ej: "4 onz", "Docena", "lb").
type Unit struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
