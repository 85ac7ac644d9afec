package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

var _ repository.SalesMetricRepository = (*SalesMetricRepo)(nil)

// SalesMetricRepo lectura de los rollups diarios de ventas.
type SalesMetricRepo struct {
	pool *pgxpool.Pool
}

// NewSalesMetricRepository construye el adaptador de rollups.
func NewSalesMetricRepository(pool *pgxpool.Pool) *SalesMetricRepo {
	return &SalesMetricRepo{pool: pool}
}

// FindBetween devuelve los rollups con fecha en [start, end], ascendente por fecha.
func (r *SalesMetricRepo) FindBetween(ctx context.Context, start, end time.Time) ([]entity.SalesMetric, error) {
	const query = `
	SELECT sm.id, sm.date, sm.total_sales, sm.total_orders,
	       sm.average_order_value, sm.return_rate, sm.new_customers
	FROM sales_metrics sm
	WHERE sm.date >= $1
	  AND sm.date <= $2
	ORDER BY sm.date ASC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales_metrics.FindBetween: %w", err)
	}
	defer rows.Close()

	var metrics []entity.SalesMetric
	for rows.Next() {
		var m entity.SalesMetric
		if err := rows.Scan(
			&m.ID, &m.Date, &m.TotalSales, &m.TotalOrders,
			&m.AverageOrderValue, &m.ReturnRate, &m.NewCustomers,
		); err != nil {
			return nil, fmt.Errorf("sales_metrics.FindBetween scan: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}
