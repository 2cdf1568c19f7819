// Package inventory implementa el motor de stock: la regla de que una venta
// valida y descuenta stock de forma atómica, y que todo movimiento queda
// reflejado exactamente una vez en la cantidad del producto.
package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// maxSKURetries intentos de transacción completa ante colisión del SKU
// generado por dos movimientos concurrentes (constraint único + reintento).
const maxSKURetries = 3

// StockLedger registra ventas y movimientos de inventario de forma
// transaccional, con bloqueo de fila del producto (SELECT FOR UPDATE)
// y Commit/Rollback por operación.
type StockLedger struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	cache       CacheInvalidator
}

// NewStockLedger construye el motor de stock. cache puede ser nil.
func NewStockLedger(txRunner TxRunner, productRepo repository.ProductRepository, cache CacheInvalidator) *StockLedger {
	return &StockLedger{txRunner: txRunner, productRepo: productRepo, cache: cache}
}

// invalidateCache se llama tras cada commit que cambió una cantidad.
func (l *StockLedger) invalidateCache(ctx context.Context) {
	if l.cache != nil {
		_ = l.cache.Invalidate(ctx)
	}
}

// SaleInput entrada para registrar una venta.
type SaleInput struct {
	ProductID string
	Quantity  int64
	SoldPrice decimal.Decimal // precio al momento de la venta, 2 decimales
}

// SaleResult resultado de una venta registrada.
type SaleResult struct {
	SaleID            string
	RemainingQuantity int64
}

// MovementResult resultado de un movimiento registrado.
type MovementResult struct {
	SKU         string
	NewQuantity int64
}

// CurrentStock devuelve la cantidad almacenada del producto, sin más cómputo.
func (l *StockLedger) CurrentStock(ctx context.Context, productID string) (int64, error) {
	product, err := l.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrProductNotFound
	}
	return product.Quantity, nil
}
