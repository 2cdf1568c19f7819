package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	inv "github.com/ecolosur/catalogo-api/internal/domain/inventory"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// RecordMovement registra un ajuste de stock (delta positivo = entrada,
// negativo = merma o corrección). Dentro de una sola transacción: bloquea la
// fila del producto, genera el siguiente SKU de la secuencia P###, persiste
// el movimiento y aplica el delta a la cantidad.
//
// Un movimiento puede dejar la cantidad en negativo: solo las ventas rechazan
// stock insuficiente. Un ajuste corrige lo que ya pasó en el almacén, aunque
// el conteo registrado estuviera equivocado.
//
// La generación del SKU se serializa con el bloqueo de fila para movimientos
// del mismo producto; entre productos distintos la protege el constraint
// único de la BD más un reintento de la transacción completa.
func (l *StockLedger) RecordMovement(ctx context.Context, productID string, delta int64) (*MovementResult, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result MovementResult
	for attempt := 0; attempt < maxSKURetries; attempt++ {
		err := l.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			movRepo repository.InventoryMovementRepository,
			_ repository.SaleRepository,
		) error {
			product, err := productRepo.GetForUpdate(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}

			last, err := movRepo.LastSKU()
			if err != nil {
				return err
			}
			sku, err := inv.NextSKU(last)
			if err != nil {
				return err
			}

			movement := &entity.InventoryMovement{
				ID:        uuid.New().String(),
				SKU:       sku,
				ProductID: product.ID,
				Quantity:  delta,
				CreatedAt: time.Now().UTC(),
			}
			if err := movRepo.Create(movement); err != nil {
				return err
			}
			newQuantity := product.Quantity + delta
			if err := productRepo.UpdateQuantity(product.ID, newQuantity); err != nil {
				return err
			}
			result = MovementResult{SKU: sku, NewQuantity: newQuantity}
			return nil
		})
		if err == nil {
			l.invalidateCache(ctx)
			return &result, nil
		}
		// Dos transacciones concurrentes calcularon el mismo "siguiente" SKU:
		// el constraint único aborta una; se reintenta la transacción completa.
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		return nil, err
	}
	return nil, domain.ErrConflictRetry
}
