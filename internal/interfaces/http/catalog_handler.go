package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/application/usecase"
	"github.com/ecolosur/catalogo-api/internal/domain"
)

// CatalogHandler maneja las peticiones del catálogo público (sin autenticación).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Categories godoc
// @Summary      Categorías activas del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CatalogCategoryResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	items, err := h.uc.Categories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Products godoc
// @Summary      Productos activos del catálogo
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Slug de categoría"
// @Param        search    query  string  false  "Búsqueda en nombre y descripción"
// @Param        q         query  string  false  "Alias de search"
// @Param        in_stock  query  bool    false  "Solo productos con stock"
// @Param        limit     query  int     false  "Máximo de filas (default 20)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.CatalogProductListResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	// El storefront existente manda search; q se mantiene como alias corto.
	search := c.Query("search")
	if search == "" {
		search = c.Query("q")
	}
	query := usecase.CatalogQuery{
		CategorySlug: c.Query("category"),
		Search:       search,
		InStockOnly:  c.QueryBool("in_stock"),
	}
	resp, err := h.uc.Products(c.Context(), query, parsePage(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ProductBySlug godoc
// @Summary      Detalle público de un producto
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.CatalogProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/products/{slug} [get]
func (h *CatalogHandler) ProductBySlug(c *fiber.Ctx) error {
	resp, err := h.uc.ProductBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Banners godoc
// @Summary      Banners activos del carrusel
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CatalogBannerResponse
// @Router       /api/catalog/banners [get]
func (h *CatalogHandler) Banners(c *fiber.Ctx) error {
	items, err := h.uc.Banners(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}
