package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/application/usecase"
)

// BannerHandler maneja las peticiones HTTP de banners del carrusel (protegido).
type BannerHandler struct {
	uc *usecase.BannerUseCase
}

// NewBannerHandler construye el handler.
func NewBannerHandler(uc *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear banner del carrusel
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBannerRequest  true  "Banner nuevo"
// @Success      201   {object}  dto.BannerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/banners [post]
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update godoc
// @Summary      Actualizar banner
// @Tags         banners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del banner"
// @Param        body  body  dto.UpdateBannerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BannerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/banners/{id} [put]
func (h *BannerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBannerRequest
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
// @Summary      Listar banners (vista admin, incluye inactivos)
// @Tags         banners
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BannerResponse
// @Router       /api/banners [get]
func (h *BannerHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(items)
}

// Delete godoc
// @Summary      Eliminar banner
// @Tags         banners
// @Security     Bearer
// @Param        id  path  string  true  "ID del banner"
// @Success      204
// @Router       /api/banners/{id} [delete]
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return crudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
