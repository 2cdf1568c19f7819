package entity

import "time"

// Category representa una categoría de productos del catálogo.
type Category struct {
	ID          string
	Name        string // único
	Slug        string // único, derivado del nombre si viene vacío
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
