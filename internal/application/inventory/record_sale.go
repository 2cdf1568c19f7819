package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// RecordSale valida y registra una venta. Dentro de una sola transacción:
// bloquea la fila del producto (SELECT FOR UPDATE), verifica stock suficiente,
// descuenta la cantidad y persiste la venta. Sin efectos parciales: cualquier
// error hace Rollback de ambas escrituras.
func (l *StockLedger) RecordSale(ctx context.Context, in SaleInput) (*SaleResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.SoldPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	soldPrice := in.SoldPrice.Round(2)

	var result SaleResult
	err := l.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.InventoryMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del producto: serializa ventas y movimientos
		// concurrentes sobre el mismo producto.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.IsActive {
			return domain.ErrProductNotFound
		}
		if in.Quantity > product.Quantity {
			return domain.ErrInsufficientStock
		}

		remaining := product.Quantity - in.Quantity
		if err := productRepo.UpdateQuantity(product.ID, remaining); err != nil {
			return err
		}
		sale := &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  in.Quantity,
			SoldPrice: soldPrice,
			CreatedAt: time.Now().UTC(),
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		result = SaleResult{SaleID: sale.ID, RemainingQuantity: remaining}
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.invalidateCache(ctx)
	return &result, nil
}

// DefaultSoldPrice devuelve el precio actual del producto, usado cuando el
// caller no envía sold_price.
func (l *StockLedger) DefaultSoldPrice(productID string) (decimal.Decimal, error) {
	product, err := l.productRepo.GetByID(productID)
	if err != nil {
		return decimal.Zero, err
	}
	if product == nil {
		return decimal.Zero, domain.ErrProductNotFound
	}
	return product.Price, nil
}
