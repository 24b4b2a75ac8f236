package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, price_usd, old_price_usd, is_offer, stock, image, category_id, created_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, name, description, price_usd, old_price_usd, is_offer, stock, image, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.Name, product.Description, product.PriceUsd, product.OldPriceUsd,
		product.IsOffer, product.Stock, product.Image, product.CategoryID, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.PriceUsd, &p.OldPriceUsd,
		&p.IsOffer, &p.Stock, &p.Image, &p.CategoryID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos con el nombre de su categoría, más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]repository.ProductWithCategory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.name, p.description, p.price_usd, p.old_price_usd, p.is_offer,
		       p.stock, p.image, p.category_id, p.created_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProductsWithCategory(rows)
}

// ListRelated lista hasta limit productos de la misma categoría, excluyendo uno.
func (r *ProductRepo) ListRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]repository.ProductWithCategory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.name, p.description, p.price_usd, p.old_price_usd, p.is_offer,
		       p.stock, p.image, p.category_id, p.created_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.category_id = $1 AND p.id <> $2
		LIMIT $3`,
		categoryID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list related products: %w", err)
	}
	defer rows.Close()
	return scanProductsWithCategory(rows)
}

func scanProductsWithCategory(rows pgx.Rows) ([]repository.ProductWithCategory, error) {
	var list []repository.ProductWithCategory
	for rows.Next() {
		var item repository.ProductWithCategory
		p := &item.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceUsd, &p.OldPriceUsd,
			&p.IsOffer, &p.Stock, &p.Image, &p.CategoryID, &p.CreatedAt, &item.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente (incluye edición directa de stock por el admin).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price_usd = $4, old_price_usd = $5,
		    is_offer = $6, stock = $7, image = $8, category_id = $9
		WHERE id = $1`,
		product.ID, product.Name, product.Description, product.PriceUsd, product.OldPriceUsd,
		product.IsOffer, product.Stock, product.Image, product.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DecrementStock descuenta quantity solo si hay stock suficiente, en una sola sentencia.
// El WHERE stock >= quantity cierra la carrera chequeo-luego-descuento: dos ventas
// concurrentes no pueden dejar stock negativo.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, quantity int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		id, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// IncrementStock repone quantity al stock (anulación de venta).
func (r *ProductRepo) IncrementStock(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock + $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
