package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/application/ingest"
)

// ScraperHandler maneja el scraping de marketplaces y la importación al catálogo.
type ScraperHandler struct {
	uc *ingest.IngestUseCase
}

// NewScraperHandler construye el handler.
func NewScraperHandler(uc *ingest.IngestUseCase) *ScraperHandler {
	return &ScraperHandler{uc: uc}
}

// Scrape godoc
// @Summary      Extraer ficha de producto de un marketplace (AliExpress/Alibaba)
// @Tags         scraper
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScrapeRequest  true  "URL del producto"
// @Success      200   {object}  dto.ScrapedProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/scraper/scrape [post]
func (h *ScraperHandler) Scrape(c *fiber.Ctx) error {
	var in dto.ScrapeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Scrape(c.Context(), in.URL)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar un resultado del scraper como producto del catálogo
// @Tags         scraper
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportScrapedRequest  true  "Resultado revisado + overrides"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scraper/import [post]
func (h *ScraperHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportScrapedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Import(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
