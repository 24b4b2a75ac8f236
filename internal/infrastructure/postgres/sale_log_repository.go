package postgres

import (
	"context"
	"fmt"

	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
)

var _ repository.SaleLogRepository = (*SaleLogRepo)(nil)

// SaleLogRepo implementación de SaleLogRepository sobre PostgreSQL.
// Tabla append-only; no hay update ni delete.
type SaleLogRepo struct {
	q Querier
}

// NewSaleLogRepository construye el adaptador de persistencia para el registro de intenciones.
func NewSaleLogRepository(q Querier) *SaleLogRepo {
	return &SaleLogRepo{q: q}
}

// Create persiste un registro de intención de compra.
func (r *SaleLogRepo) Create(ctx context.Context, log *entity.SaleLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sale_logs (id, product_name, price_usd_at_moment, exchange_rate, price_ves_calculated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.ProductName, log.PriceUsdAtMoment, log.ExchangeRate,
		log.PriceVesCalculated, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale log: %w", err)
	}
	return nil
}

// List devuelve los últimos registros de intención, más recientes primero.
func (r *SaleLogRepo) List(ctx context.Context, limit int) ([]*entity.SaleLog, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_name, price_usd_at_moment, exchange_rate, price_ves_calculated, created_at
		FROM sale_logs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sale logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLog
	for rows.Next() {
		var l entity.SaleLog
		if err := rows.Scan(&l.ID, &l.ProductName, &l.PriceUsdAtMoment,
			&l.ExchangeRate, &l.PriceVesCalculated, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
