package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/daianstore/tienda-api/internal/application/auth"
	"github.com/daianstore/tienda-api/internal/application/ingest"
	"github.com/daianstore/tienda-api/internal/application/media"
	"github.com/daianstore/tienda-api/internal/application/pricing"
	"github.com/daianstore/tienda-api/internal/application/sales"
	"github.com/daianstore/tienda-api/internal/application/usecase"
	infrapdf "github.com/daianstore/tienda-api/internal/infrastructure/pdf"
	"github.com/daianstore/tienda-api/internal/infrastructure/postgres"
	"github.com/daianstore/tienda-api/internal/infrastructure/rates"
	"github.com/daianstore/tienda-api/internal/infrastructure/scrape"
	"github.com/daianstore/tienda-api/internal/infrastructure/storage"
	httpRouter "github.com/daianstore/tienda-api/internal/interfaces/http"
	"github.com/daianstore/tienda-api/pkg/config"
	"github.com/daianstore/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	saleLogRepo := postgres.NewSaleLogRepository(pool)
	slideRepo := postgres.NewHeroSlideRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Backend de almacenamiento según driver configurado
	var mediaStorage media.Storage
	switch cfg.Storage.Driver {
	case "minio":
		minioStorage, err := storage.NewMinioStorage(cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("backend minio")
		}
		if err := minioStorage.EnsureBucket(ctx); err != nil {
			log.Fatal().Err(err).Msg("bucket minio")
		}
		mediaStorage = minioStorage
	default:
		localStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
		if err != nil {
			log.Fatal().Err(err).Msg("backend local")
		}
		mediaStorage = localStorage
	}

	rateClient := rates.NewDolarApiClient(cfg.Rates, log)
	pageScraper := scrape.NewScraper()
	reportGen := infrapdf.NewSalesReportGenerator(cfg.App.Name)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	slideUC := usecase.NewSlideUseCase(slideRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, saleLogRepo, reportGen, cfg.Store.WhatsAppPhone)
	ingestUC := ingest.NewIngestUseCase(pageScraper, productUC, cfg.Store.PlaceholderImage)
	uploadUC := media.NewUploadUseCase(mediaStorage)
	rateUC := pricing.NewRateUseCase(rateClient)
	authUC := auth.NewAuthUseCase(cfg.JWT, cfg.Admin)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    64 * 1024 * 1024, // el límite real por tipo lo valida media.UploadUseCase
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Daian Store API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Con driver local las imágenes se sirven desde el mismo proceso
	if cfg.Storage.Driver != "minio" {
		app.Static("/uploads", cfg.Storage.UploadDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		SlideUC:    slideUC,
		SaleUC:     saleUC,
		IngestUC:   ingestUC,
		UploadUC:   uploadUC,
		RateUC:     rateUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
