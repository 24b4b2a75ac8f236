package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daianstore/tienda-api/internal/domain/entity"
)

// SaleWithProduct venta junto al nombre del producto (listado del panel admin).
type SaleWithProduct struct {
	Sale        entity.Sale
	ProductName string
}

// SalesStats agregados del libro de ventas.
type SalesStats struct {
	TotalSales      int
	TotalRevenue    decimal.Decimal
	TotalRevenueVes decimal.Decimal
	TodaySales      int
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]SaleWithProduct, error)
	Delete(ctx context.Context, id string) error
	// Stats agrega sobre todas las ventas; since marca la medianoche local
	// para el conteo de "ventas de hoy".
	Stats(ctx context.Context, since time.Time) (*SalesStats, error)
}
