package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/application/usecase"
	"github.com/ecolosur/catalogo-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP de productos (vista admin, protegido).
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	imageUC *usecase.ImageUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, imageUC *usecase.ImageUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, imageUC: imageUC}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Producto nuevo (sin stock: se carga vía movimientos)"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Producto por ID (vista admin)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Campos de catálogo únicamente. El stock no se modifica por
//
//	esta vía: solo vía ventas y movimientos de inventario.
//
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar productos (vista admin, incluye inactivos)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Un producto con ventas o movimientos registrados no se puede
//
//	borrar; responde 409 IN_USE. Para retirarlo del catálogo,
//	desactivarlo vía PUT.
//
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return crudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddImage godoc
// @Summary      Asociar imagen a un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del producto"
// @Param        body  body  dto.AddImageRequest  true  "URL de la imagen en el CDN"
// @Success      201   {object}  dto.ImageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/images [post]
func (h *ProductHandler) AddImage(c *fiber.Ctx) error {
	var in dto.AddImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.imageUC.Add(c.Context(), c.Params("id"), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListImages godoc
// @Summary      Imágenes de un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.ImageResponse
// @Router       /api/products/{id}/images [get]
func (h *ProductHandler) ListImages(c *fiber.Ctx) error {
	items, err := h.imageUC.ListByProduct(c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(items)
}

// DeleteImage godoc
// @Summary      Eliminar imagen
// @Tags         products
// @Security     Bearer
// @Param        imageID  path  string  true  "ID de la imagen"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/images/{imageID} [delete]
func (h *ProductHandler) DeleteImage(c *fiber.Ctx) error {
	if err := h.imageUC.Delete(c.Context(), c.Params("imageID")); err != nil {
		return crudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// crudError mapea errores de dominio comunes de los CRUD a respuestas HTTP.
func crudError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un recurso con ese valor único"})
	case errors.Is(err, domain.ErrInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: "el recurso está referenciado por otros registros; desactívelo en su lugar"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
