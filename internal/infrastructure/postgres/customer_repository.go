package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo consultas de solo lectura sobre clientes.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de clientes.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Count devuelve el total de clientes registrados.
func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("customers.Count: %w", err)
	}
	return n, nil
}

// CountNewBetween devuelve cuántos clientes se registraron en [start, end].
func (r *CustomerRepo) CountNewBetween(ctx context.Context, start, end time.Time) (int64, error) {
	const query = `
	SELECT COUNT(*) FROM customers c
	WHERE c.registration_date >= $1
	  AND c.registration_date <= $2`

	var n int64
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&n); err != nil {
		return 0, fmt.Errorf("customers.CountNewBetween: %w", err)
	}
	return n, nil
}
