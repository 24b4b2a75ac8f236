package dto

import "github.com/shopspring/decimal"

// ScrapeRequest entrada para el scraper de fichas de producto.
type ScrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ScrapedProductResponse resultado transitorio del scraper. Nunca se persiste:
// el operador lo revisa y edita antes de importarlo al catálogo.
type ScrapedProductResponse struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // 0 = desconocido, no es error
	Images      []string        `json:"images"`
	Source      string          `json:"source"` // aliexpress | alibaba
}

// ImportScrapedRequest entrada para convertir un resultado del scraper en producto.
// Los overrides del operador ganan sobre lo extraído.
type ImportScrapedRequest struct {
	Scraped       ScrapedProductResponse `json:"scraped" validate:"required"`
	CategoryID    string                 `json:"category_id" validate:"required"`
	PriceOverride *decimal.Decimal       `json:"price_override"`
	NameOverride  *string                `json:"name_override"`
}
