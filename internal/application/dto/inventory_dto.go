package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales.
// SoldPrice opcional: si viene nulo se usa el precio actual del producto.
type RecordSaleRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	SoldPrice *decimal.Decimal `json:"sold_price,omitempty"`
}

// RecordSaleResponse respuesta de una venta registrada.
type RecordSaleResponse struct {
	SaleID            string `json:"sale_id"`
	RemainingQuantity int64  `json:"remaining_quantity"`
}

// RecordMovementRequest body para POST /api/inventory/movements.
// Delta positivo = entrada (reposición), negativo = merma o corrección.
type RecordMovementRequest struct {
	ProductID string `json:"product_id"`
	Delta     int64  `json:"delta"`
}

// RecordMovementResponse respuesta de un movimiento registrado.
type RecordMovementResponse struct {
	SKU         string `json:"sku"`
	NewQuantity int64  `json:"new_quantity"`
}

// StockResponse respuesta de GET /api/products/{id}/stock.
type StockResponse struct {
	Quantity int64 `json:"quantity"`
}

// MovementResponse movimiento en listados admin.
type MovementResponse struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleResponse venta en listados admin.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	SoldPrice decimal.Decimal `json:"sold_price"`
	CreatedAt time.Time       `json:"created_at"`
}
