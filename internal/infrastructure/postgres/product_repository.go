package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.name, p.sku, p.price, p.cost_price, p.inventory,
	p.category_id, p.vendor_id, p.rating, p.review_count, p.is_active, p.created_at`

// ProductRepo consultas de solo lectura sobre el catálogo de productos.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// ListActive lista productos activos con paginación estable (id ascendente).
func (r *ProductRepo) ListActive(ctx context.Context, limit, offset int) ([]entity.Product, int64, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM products p
	WHERE p.is_active = true
	ORDER BY p.id ASC
	LIMIT $1 OFFSET $2`, productColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("products.ListActive: %w", err)
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("products.ListActive scan: %w", err)
	}

	var total int64
	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = true`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("products.ListActive count: %w", err)
	}
	return products, total, nil
}

// TopSelling ranking de productos activos por ingreso de líneas de orden,
// descendente, con empates resueltos por id ascendente.
func (r *ProductRepo) TopSelling(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	query := fmt.Sprintf(`
	SELECT %s,
	    COALESCE(SUM(oi.quantity), 0)                 AS units_sold,
	    COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue
	FROM products p
	JOIN order_items oi ON oi.product_id = p.id
	WHERE p.is_active = true
	GROUP BY p.id
	ORDER BY revenue DESC, p.id ASC
	LIMIT $1`, productColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("products.TopSelling: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var res repository.TopProductResult
		if err := rows.Scan(
			&res.Product.ID, &res.Product.Name, &res.Product.SKU, &res.Product.Price,
			&res.Product.CostPrice, &res.Product.Inventory, &res.Product.CategoryID,
			&res.Product.VendorID, &res.Product.Rating, &res.Product.ReviewCount,
			&res.Product.IsActive, &res.Product.CreatedAt,
			&res.UnitsSold, &res.Revenue,
		); err != nil {
			return nil, fmt.Errorf("products.TopSelling scan: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// LowStock productos activos con inventario menor al umbral.
func (r *ProductRepo) LowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM products p
	WHERE p.inventory < $1
	  AND p.is_active = true
	ORDER BY p.inventory ASC`, productColumns)

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("products.LowStock: %w", err)
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("products.LowStock scan: %w", err)
	}
	return products, nil
}

// SearchByName búsqueda case-insensitive por subcadena de nombre, solo activos.
// El ORDER BY p.id mantiene las páginas estables entre peticiones.
func (r *ProductRepo) SearchByName(ctx context.Context, query string, limit, offset int) ([]entity.Product, int64, error) {
	pattern := "%" + query + "%"
	sql := fmt.Sprintf(`
	SELECT %s FROM products p
	WHERE p.name ILIKE $1
	  AND p.is_active = true
	ORDER BY p.id ASC
	LIMIT $2 OFFSET $3`, productColumns)

	rows, err := r.pool.Query(ctx, sql, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("products.SearchByName: %w", err)
	}
	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("products.SearchByName scan: %w", err)
	}

	var total int64
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE name ILIKE $1 AND is_active = true`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("products.SearchByName count: %w", err)
	}
	return products, total, nil
}

// scanProducts recorre las filas de una consulta con productColumns y cierra rows.
func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	defer rows.Close()
	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.SKU, &p.Price, &p.CostPrice, &p.Inventory,
			&p.CategoryID, &p.VendorID, &p.Rating, &p.ReviewCount, &p.IsActive, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
