package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/application/usecase"
)

// SlideHandler maneja los slides del carrusel de portada.
type SlideHandler struct {
	uc *usecase.SlideUseCase
}

// NewSlideHandler construye el handler.
func NewSlideHandler(uc *usecase.SlideUseCase) *SlideHandler {
	return &SlideHandler{uc: uc}
}

// Create godoc
// @Summary      Crear slide del carrusel
// @Tags         slides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSlideRequest  true  "Datos del slide"
// @Success      201   {object}  dto.SlideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/slides [post]
func (h *SlideHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSlideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar slides (portada usa active=true)
// @Tags         slides
// @Produce      json
// @Param        active  query  bool  false  "Solo slides activos"
// @Success      200     {array}  dto.SlideResponse
// @Router       /api/slides [get]
func (h *SlideHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar slide (incluye toggle is_active)
// @Tags         slides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del slide"
// @Param        body  body  dto.UpdateSlideRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SlideResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/slides/{id} [put]
func (h *SlideHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSlideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar slide
// @Tags         slides
// @Security     Bearer
// @Param        id  path  string  true  "ID del slide"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/slides/{id} [delete]
func (h *SlideHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
