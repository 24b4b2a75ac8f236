package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daianstore/tienda-api/internal/application/auth"
	"github.com/daianstore/tienda-api/internal/application/ingest"
	"github.com/daianstore/tienda-api/internal/application/media"
	"github.com/daianstore/tienda-api/internal/application/pricing"
	"github.com/daianstore/tienda-api/internal/application/sales"
	"github.com/daianstore/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	SlideUC    *usecase.SlideUseCase
	SaleUC     *sales.SaleUseCase
	IngestUC   *ingest.IngestUseCase
	UploadUC   *media.UploadUseCase
	RateUC     *pricing.RateUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas de la vitrina y el registro
// de intenciones de compra son públicos; todas las mutaciones del catálogo y el
// libro de ventas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Vitrina (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/products/:id/related", productHandler.ListRelated)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)

	slideHandler := NewSlideHandler(deps.SlideUC)
	api.Get("/slides", slideHandler.List)

	rateHandler := NewRateHandler(deps.RateUC)
	api.Get("/rates", rateHandler.Get)

	saleHandler := NewSaleHandler(deps.SaleUC)
	api.Post("/sale-intents", saleHandler.CreateIntent)

	// Rutas protegidas (panel admin, Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/products", productHandler.Create)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	protected.Post("/categories", categoryHandler.Create)
	protected.Delete("/categories/:id", categoryHandler.Delete)

	protected.Post("/slides", slideHandler.Create)
	protected.Put("/slides/:id", slideHandler.Update)
	protected.Delete("/slides/:id", slideHandler.Delete)

	protected.Post("/sales", saleHandler.Create)
	protected.Get("/sales", saleHandler.List)
	protected.Get("/sales/stats", saleHandler.Stats)
	protected.Get("/sales/intents", saleHandler.ListIntents)
	protected.Get("/sales/report.pdf", saleHandler.ReportPDF)
	protected.Delete("/sales/:id", saleHandler.Delete)

	uploadHandler := NewUploadHandler(deps.UploadUC)
	protected.Post("/uploads", uploadHandler.Upload)

	scraperHandler := NewScraperHandler(deps.IngestUC)
	protected.Post("/scraper/scrape", scraperHandler.Scrape)
	protected.Post("/scraper/import", scraperHandler.Import)
}
