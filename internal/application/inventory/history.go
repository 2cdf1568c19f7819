package inventory

import (
	"time"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// History consultas de solo lectura sobre el historial de movimientos y ventas.
// Lee fuera de transacción: los listados no necesitan bloquear filas.
type History struct {
	movRepo  repository.InventoryMovementRepository
	saleRepo repository.SaleRepository
}

// NewHistory construye las consultas de historial.
func NewHistory(movRepo repository.InventoryMovementRepository, saleRepo repository.SaleRepository) *History {
	return &History{movRepo: movRepo, saleRepo: saleRepo}
}

// Movements lista movimientos, opcionalmente filtrados por producto.
func (h *History) Movements(productID string, limit, offset int) ([]dto.MovementResponse, error) {
	var (
		list []*entity.InventoryMovement
		err  error
	)
	if productID != "" {
		list, err = h.movRepo.ListByProduct(productID, limit, offset)
	} else {
		list, err = h.movRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return items, nil
}

// MovementBySKU obtiene un movimiento por su SKU.
func (h *History) MovementBySKU(sku string) (*dto.MovementResponse, error) {
	m, err := h.movRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	resp := toMovementResponse(m)
	return &resp, nil
}

// Sales lista ventas, opcionalmente filtradas por producto y rango de fechas.
func (h *History) Sales(productID string, from, to *time.Time, limit, offset int) ([]dto.SaleResponse, error) {
	var (
		list []*entity.Sale
		err  error
	)
	if productID != "" {
		list, err = h.saleRepo.ListByProduct(productID, from, to, limit, offset)
	} else {
		list, err = h.saleRepo.List(from, to, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s))
	}
	return items, nil
}

// SaleByID obtiene una venta por ID.
func (h *History) SaleByID(id string) (*dto.SaleResponse, error) {
	s, err := h.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSaleResponse(s)
	return &resp, nil
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		SKU:       m.SKU,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		SoldPrice: s.SoldPrice,
		CreatedAt: s.CreatedAt,
	}
}
