package ingest

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/application/usecase"
	"github.com/daianstore/tienda-api/internal/domain"
)

// PageScraper puerto del módulo de scraping (implementado en infrastructure/scrape).
type PageScraper interface {
	Scrape(ctx context.Context, url string) (*dto.ScrapedProductResponse, error)
}

// defaultImportPrice precio sustituto cuando el scraper no encontró precio
// y el operador no envió override.
var defaultImportPrice = decimal.NewFromInt(10)

// defaultImportStock stock inicial de los productos importados.
const defaultImportStock = 10

// IngestUseCase orquesta el scraping de fichas de producto y su importación
// al catálogo tras la revisión del operador.
type IngestUseCase struct {
	scraper          PageScraper
	products         *usecase.ProductUseCase
	placeholderImage string
}

// NewIngestUseCase construye el caso de uso.
func NewIngestUseCase(scraper PageScraper, products *usecase.ProductUseCase, placeholderImage string) *IngestUseCase {
	return &IngestUseCase{
		scraper:          scraper,
		products:         products,
		placeholderImage: placeholderImage,
	}
}

// Scrape obtiene la ficha transitoria de un producto. Nunca persiste nada:
// el resultado va al operador para revisión y edición.
func (uc *IngestUseCase) Scrape(ctx context.Context, url string) (*dto.ScrapedProductResponse, error) {
	if url == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.scraper.Scrape(ctx, url)
}

// Import convierte un resultado del scraper en un producto del catálogo.
// Los overrides del operador ganan; precio desconocido cae al sustituto,
// sin imágenes se usa el placeholder. Delegado al alta normal de productos
// (un solo insert, sin transacción).
func (uc *IngestUseCase) Import(ctx context.Context, in dto.ImportScrapedRequest) (*dto.ProductResponse, error) {
	name := in.Scraped.Title
	if in.NameOverride != nil && *in.NameOverride != "" {
		name = *in.NameOverride
	}

	price := in.Scraped.Price
	if in.PriceOverride != nil && in.PriceOverride.GreaterThan(decimal.Zero) {
		price = *in.PriceOverride
	}
	if price.LessThanOrEqual(decimal.Zero) {
		price = defaultImportPrice
	}

	image := uc.placeholderImage
	if len(in.Scraped.Images) > 0 {
		image = in.Scraped.Images[0]
	}

	return uc.products.Create(ctx, dto.CreateProductRequest{
		Name:        name,
		Description: in.Scraped.Description,
		PriceUsd:    price,
		IsOffer:     false,
		Stock:       defaultImportStock,
		Image:       image,
		CategoryID:  in.CategoryID,
	})
}
