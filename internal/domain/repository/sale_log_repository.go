package repository

import (
	"context"

	"github.com/daianstore/tienda-api/internal/domain/entity"
)

// SaleLogRepository define el puerto de persistencia para SaleLog (append-only).
type SaleLogRepository interface {
	Create(ctx context.Context, log *entity.SaleLog) error
	List(ctx context.Context, limit int) ([]*entity.SaleLog, error)
}
