package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/domain"
	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
// El stock se edita aquí solo como corrección directa del admin; las ventas
// lo mutan vía el libro de ventas.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un nuevo producto. priceUsd > 0, stock >= 0 y la categoría debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.PriceUsd.LessThanOrEqual(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		PriceUsd:    in.PriceUsd,
		OldPriceUsd: in.OldPriceUsd,
		IsOffer:     in.IsOffer,
		Stock:       in.Stock,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, category.Name), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product, ""), nil
}

// List lista todos los productos con su categoría, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListRelated lista productos de la misma categoría, excluyendo el indicado.
func (uc *ProductUseCase) ListRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 4
	}
	list, err := uc.repo.ListRelated(ctx, categoryID, excludeID, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update actualiza un producto (campos opcionales; los punteros no enviados se conservan).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.PriceUsd != nil {
		if in.PriceUsd.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PriceUsd = *in.PriceUsd
	}
	if in.ClearOldPrice {
		product.OldPriceUsd = nil
	} else if in.OldPriceUsd != nil {
		product.OldPriceUsd = in.OldPriceUsd
	}
	if in.IsOffer != nil {
		product.IsOffer = *in.IsOffer
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrCategoryNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, ""), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product, categoryName string) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PriceUsd:     p.PriceUsd,
		OldPriceUsd:  p.OldPriceUsd,
		IsOffer:      p.IsOffer,
		Stock:        p.Stock,
		Image:        p.Image,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		CreatedAt:    p.CreatedAt,
	}
}

func toProductResponses(list []repository.ProductWithCategory) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, item := range list {
		out = append(out, *toProductResponse(&item.Product, item.CategoryName))
	}
	return out
}
