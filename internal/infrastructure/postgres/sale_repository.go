package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, product_id, quantity, price_usd, total_usd, exchange_rate, total_ves, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)`,
		sale.ID, sale.ProductID, sale.Quantity, sale.PriceUsd, sale.TotalUsd,
		sale.ExchangeRate, sale.TotalVes, sale.Notes, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	var notes *string
	err := r.q.QueryRow(ctx, `
		SELECT id, product_id, quantity, price_usd, total_usd, exchange_rate, total_ves, notes, created_at
		FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.ProductID, &s.Quantity, &s.PriceUsd, &s.TotalUsd,
		&s.ExchangeRate, &s.TotalVes, &notes, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if notes != nil {
		s.Notes = *notes
	}
	return &s, nil
}

// List lista las ventas con el nombre del producto, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]repository.SaleWithProduct, error) {
	rows, err := r.q.Query(ctx, `
		SELECT s.id, s.product_id, s.quantity, s.price_usd, s.total_usd,
		       s.exchange_rate, s.total_ves, s.notes, s.created_at, p.name
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleWithProduct
	for rows.Next() {
		var item repository.SaleWithProduct
		s := &item.Sale
		var notes *string
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.PriceUsd, &s.TotalUsd,
			&s.ExchangeRate, &s.TotalVes, &notes, &s.CreatedAt, &item.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if notes != nil {
			s.Notes = *notes
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// Stats agrega todas las ventas en una sola consulta.
// COALESCE devuelve cero cuando el libro está vacío; since marca la medianoche local
// para el conteo de hoy.
func (r *SaleRepo) Stats(ctx context.Context, since time.Time) (*repository.SalesStats, error) {
	var stats repository.SalesStats
	err := r.q.QueryRow(ctx, `
		SELECT
		    COUNT(*)                                            AS total_sales,
		    COALESCE(SUM(total_usd), 0)                         AS total_revenue,
		    COALESCE(SUM(total_ves), 0)                         AS total_revenue_ves,
		    COUNT(*) FILTER (WHERE created_at >= $1)            AS today_sales
		FROM sales`, since,
	).Scan(&stats.TotalSales, &stats.TotalRevenue, &stats.TotalRevenueVes, &stats.TodaySales)
	if err != nil {
		return nil, fmt.Errorf("sales stats: %w", err)
	}
	return &stats, nil
}
