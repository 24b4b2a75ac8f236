package repository

import (
	"context"

	"github.com/daianstore/tienda-api/internal/domain/entity"
)

// HeroSlideRepository define el puerto de persistencia para HeroSlide (DIP).
type HeroSlideRepository interface {
	Create(ctx context.Context, slide *entity.HeroSlide) error
	GetByID(ctx context.Context, id string) (*entity.HeroSlide, error)
	// List devuelve los slides ordenados por sort_order asc; con activeOnly
	// filtra los inactivos (portada de la tienda).
	List(ctx context.Context, activeOnly bool) ([]*entity.HeroSlide, error)
	Update(ctx context.Context, slide *entity.HeroSlide) error
	Delete(ctx context.Context, id string) error
}
