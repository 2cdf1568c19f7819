package entity

import "time"

// InventoryMovement representa un ajuste de stock (entrada positiva o merma negativa),
// independiente de una venta. Registro append-only: nunca se modifica ni elimina.
type InventoryMovement struct {
	ID        string
	SKU       string // único, secuencia global P000, P001, ...
	ProductID string
	Quantity  int64 // delta con signo, nunca cero
	CreatedAt time.Time
}
