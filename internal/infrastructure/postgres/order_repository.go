package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo consultas de solo lectura sobre órdenes.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de órdenes.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetStatsBetween devuelve suma, conteo y promedio de totalAmount en la ventana.
// Usa COALESCE para devolver cero (no NULL) cuando el período no tiene órdenes.
func (r *OrderRepo) GetStatsBetween(ctx context.Context, start, end time.Time) (repository.OrderStats, error) {
	const query = `
	SELECT
	    COALESCE(SUM(o.total_amount), 0) AS total_sales,
	    COUNT(o.id)                      AS total_orders,
	    COALESCE(AVG(o.total_amount), 0) AS average_order_value
	FROM orders o
	WHERE o.order_date >= $1
	  AND o.order_date <= $2`

	var stats repository.OrderStats
	err := r.pool.QueryRow(ctx, query, start, end).
		Scan(&stats.TotalSales, &stats.TotalOrders, &stats.AverageOrderValue)
	if err != nil {
		return repository.OrderStats{}, fmt.Errorf("orders.GetStatsBetween: %w", err)
	}
	return stats, nil
}
