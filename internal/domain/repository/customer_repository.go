package repository

import (
	"context"
	"time"
)

// CustomerRepository define las consultas de lectura sobre clientes.
type CustomerRepository interface {
	// Count devuelve el total de clientes registrados.
	Count(ctx context.Context) (int64, error)

	// CountNewBetween devuelve cuántos clientes se registraron en [start, end].
	CountNewBetween(ctx context.Context, start, end time.Time) (int64, error)
}
