package ingest_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/application/ingest"
	"github.com/daianstore/tienda-api/internal/application/usecase"
	"github.com/daianstore/tienda-api/internal/domain"
	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeScraper struct {
	result *dto.ScrapedProductResponse
	err    error
	urls   []string
}

func (s *fakeScraper) Scrape(_ context.Context, url string) (*dto.ScrapedProductResponse, error) {
	s.urls = append(s.urls, url)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type fakeProductRepo struct {
	created []*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]repository.ProductWithCategory, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListRelated(_ context.Context, _, _ string, _ int) ([]repository.ProductWithCategory, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }

func (r *fakeProductRepo) DecrementStock(_ context.Context, _ string, _ int) (bool, error) {
	return false, nil
}

func (r *fakeProductRepo) IncrementStock(_ context.Context, _ string, _ int) error { return nil }

func (r *fakeProductRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) { return nil, nil }

func (r *fakeCategoryRepo) CountProducts(_ context.Context, _ string) (int, error) { return 0, nil }

func (r *fakeCategoryRepo) Delete(_ context.Context, _ string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCategoryID  = "00000000-0000-0000-0000-000000000010"
	testPlaceholder = "https://via.placeholder.com/400x500?text=Sin+Imagen"
)

func buildIngest(scraper *fakeScraper) (*ingest.IngestUseCase, *fakeProductRepo) {
	productRepo := &fakeProductRepo{}
	categoryRepo := &fakeCategoryRepo{categories: map[string]*entity.Category{
		testCategoryID: {ID: testCategoryID, Name: "Vestidos"},
	}}
	products := usecase.NewProductUseCase(productRepo, categoryRepo)
	return ingest.NewIngestUseCase(scraper, products, testPlaceholder), productRepo
}

func scrapedFixture() *dto.ScrapedProductResponse {
	return &dto.ScrapedProductResponse{
		Title:       "Vestido de Verano",
		Description: "Fresco y ligero",
		Price:       decimal.NewFromFloat(25.99),
		Images:      []string{"https://ae01.alicdn.com/kf/a.jpg", "https://ae01.alicdn.com/kf/b.jpg"},
		Source:      "aliexpress",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Scrape
// ──────────────────────────────────────────────────────────────────────────────

func TestScrape_URLVacia(t *testing.T) {
	uc, _ := buildIngest(&fakeScraper{result: scrapedFixture()})
	_, err := uc.Scrape(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScrape_DelegaAlScraper(t *testing.T) {
	scraper := &fakeScraper{result: scrapedFixture()}
	uc, _ := buildIngest(scraper)

	out, err := uc.Scrape(context.Background(), "https://es.aliexpress.com/item/100.html")
	require.NoError(t, err)
	assert.Equal(t, "Vestido de Verano", out.Title)
	assert.Equal(t, []string{"https://es.aliexpress.com/item/100.html"}, scraper.urls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Import
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_UsaLosDatosExtraidos(t *testing.T) {
	uc, productRepo := buildIngest(&fakeScraper{})

	out, err := uc.Import(context.Background(), dto.ImportScrapedRequest{
		Scraped:    *scrapedFixture(),
		CategoryID: testCategoryID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Vestido de Verano", out.Name)
	assert.True(t, decimal.NewFromFloat(25.99).Equal(out.PriceUsd))
	assert.Equal(t, "https://ae01.alicdn.com/kf/a.jpg", out.Image, "usa la primera imagen extraída")
	assert.Equal(t, 10, out.Stock, "stock inicial de importados")
	require.Len(t, productRepo.created, 1)
}

func TestImport_OverridesDelOperadorGanan(t *testing.T) {
	uc, _ := buildIngest(&fakeScraper{})

	name := "Vestido Playero Premium"
	price := decimal.NewFromInt(35)
	out, err := uc.Import(context.Background(), dto.ImportScrapedRequest{
		Scraped:       *scrapedFixture(),
		CategoryID:    testCategoryID,
		NameOverride:  &name,
		PriceOverride: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, name, out.Name)
	assert.True(t, price.Equal(out.PriceUsd))
}

func TestImport_PrecioDesconocidoCaeAlSustituto(t *testing.T) {
	uc, _ := buildIngest(&fakeScraper{})

	scraped := scrapedFixture()
	scraped.Price = decimal.Zero
	out, err := uc.Import(context.Background(), dto.ImportScrapedRequest{
		Scraped:    *scraped,
		CategoryID: testCategoryID,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(out.PriceUsd),
		"precio desconocido y sin override usa el sustituto")
}

func TestImport_SinImagenesUsaPlaceholder(t *testing.T) {
	uc, _ := buildIngest(&fakeScraper{})

	scraped := scrapedFixture()
	scraped.Images = nil
	out, err := uc.Import(context.Background(), dto.ImportScrapedRequest{
		Scraped:    *scraped,
		CategoryID: testCategoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, testPlaceholder, out.Image)
}

func TestImport_CategoriaInexistente(t *testing.T) {
	uc, productRepo := buildIngest(&fakeScraper{})

	_, err := uc.Import(context.Background(), dto.ImportScrapedRequest{
		Scraped:    *scrapedFixture(),
		CategoryID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Empty(t, productRepo.created)
}
