package repository

import (
	"context"

	"github.com/daianstore/tienda-api/internal/domain/entity"
)

// ProductWithCategory producto junto al nombre de su categoría (listados de tienda).
type ProductWithCategory struct {
	Product      entity.Product
	CategoryName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]ProductWithCategory, error)
	ListRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]ProductWithCategory, error)
	Update(ctx context.Context, product *entity.Product) error
	// DecrementStock descuenta quantity de forma condicional y atómica:
	// UPDATE ... SET stock = stock - q WHERE id = $1 AND stock >= q.
	// Devuelve false si ninguna fila fue afectada (producto inexistente o stock corto).
	DecrementStock(ctx context.Context, id string, quantity int) (bool, error)
	IncrementStock(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}
