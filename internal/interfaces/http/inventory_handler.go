package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/application/inventory"
	"github.com/ecolosur/catalogo-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del motor de stock: ventas,
// movimientos de inventario y consulta de stock (protegido).
type InventoryHandler struct {
	ledger  *inventory.StockLedger
	history *inventory.History
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.StockLedger, history *inventory.History) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, history: history}
}

// RecordSale godoc
// @Summary      Registrar una venta
// @Description  Descuenta stock del producto de forma atómica. Rechaza ventas
//
//	que dejarían el stock negativo.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "product_id, quantity, sold_price (opcional)"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *InventoryHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	saleIn := inventory.SaleInput{ProductID: in.ProductID, Quantity: in.Quantity}
	if in.SoldPrice != nil {
		saleIn.SoldPrice = *in.SoldPrice
	} else {
		price, err := h.ledger.DefaultSoldPrice(in.ProductID)
		if err != nil {
			return h.saleError(c, err)
		}
		saleIn.SoldPrice = price
	}

	result, err := h.ledger.RecordSale(c.Context(), saleIn)
	if err != nil {
		return h.saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordSaleResponse{
		SaleID:            result.SaleID,
		RemainingQuantity: result.RemainingQuantity,
	})
}

// saleError mapea errores del motor de ventas a respuestas HTTP.
// Stock insuficiente es 400, no 409: es un rechazo de negocio definitivo,
// reintentar la misma venta nunca va a funcionar.
func (h *InventoryHandler) saleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado o inactivo"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser positiva"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Ajusta el stock con un delta con signo y asigna el siguiente
//
//	SKU de la secuencia global (P000, P001, ...). Permite dejar
//	stock negativo: los ajustes corrigen la realidad del almacén.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, delta (con signo, nunca cero)"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.ledger.RecordMovement(c.Context(), in.ProductID, in.Delta)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "el delta no puede ser cero"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrConflictRetry):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT_RETRY", Message: "conflicto de concurrencia, reintentar"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordMovementResponse{
		SKU:         result.SKU,
		NewQuantity: result.NewQuantity,
	})
}

// CurrentStock godoc
// @Summary      Stock actual de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *InventoryHandler) CurrentStock(c *fiber.Ctx) error {
	quantity, err := h.ledger.CurrentStock(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockResponse{Quantity: quantity})
}

// ListMovements godoc
// @Summary      Historial de movimientos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Máximo de filas (default 20)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := parsePage(c)
	items, err := h.history.Movements(c.Query("product_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// GetMovementBySKU godoc
// @Summary      Movimiento por SKU
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del movimiento (P000, P001, ...)"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{sku} [get]
func (h *InventoryHandler) GetMovementBySKU(c *fiber.Ctx) error {
	item, err := h.history.MovementBySKU(c.Params("sku"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(item)
}

// ListSales godoc
// @Summary      Historial de ventas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        from        query  string  false  "Fecha inicial (RFC 3339)"
// @Param        to          query  string  false  "Fecha final (RFC 3339)"
// @Param        limit       query  int     false  "Máximo de filas (default 20)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *InventoryHandler) ListSales(c *fiber.Ctx) error {
	page := parsePage(c)
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC 3339)"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC 3339)"})
	}
	items, err := h.history.Sales(c.Query("product_id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// GetSale godoc
// @Summary      Venta por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *InventoryHandler) GetSale(c *fiber.Ctx) error {
	item, err := h.history.SaleByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(item)
}

func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.DefaultPage()
	return page
}
