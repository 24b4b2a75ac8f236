package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daianstore/tienda-api/internal/application/pricing"
)

// RateHandler expone la tasa de cambio USD/VES vigente.
type RateHandler struct {
	uc *pricing.RateUseCase
}

// NewRateHandler construye el handler.
func NewRateHandler(uc *pricing.RateUseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Get godoc
// @Summary      Tasa de cambio USD/VES vigente (BCV, cacheada)
// @Tags         rates
// @Produce      json
// @Success      200  {object}  dto.ExchangeRateResponse
// @Router       /api/rates [get]
func (h *RateHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetExchangeRate(c.Context()))
}
