package repository

import "github.com/ecolosur/catalogo-api/internal/domain/entity"

// InventoryMovementRepository define el puerto de persistencia para movimientos
// de inventario. Los movimientos son append-only: no hay Update ni Delete.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetBySKU(sku string) (*entity.InventoryMovement, error)
	// LastSKU devuelve el SKU con la secuencia más alta, o "" si no hay movimientos.
	LastSKU() (string, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.InventoryMovement, error)
	List(limit, offset int) ([]*entity.InventoryMovement, error)
}
