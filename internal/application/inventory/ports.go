package inventory

import (
	"context"

	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// o se aplican las dos escrituras (stock + venta/movimiento) o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// CacheInvalidator borra las entradas cacheadas del catálogo público.
// El catálogo publica in_stock y availability, así que todo commit que
// toque el stock debe invalidarlo, igual que las escrituras del CRUD.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
