package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStats agregados de órdenes en una ventana de tiempo.
// La DB devuelve cero (nunca NULL) cuando no hay órdenes: las consultas usan COALESCE.
type OrderStats struct {
	TotalSales        decimal.Decimal
	TotalOrders       int64
	AverageOrderValue decimal.Decimal
}

// OrderRepository define las consultas de lectura sobre órdenes.
// Esta API no crea ni modifica órdenes; eso lo hace el subsistema de ventas.
type OrderRepository interface {
	// GetStatsBetween devuelve suma, conteo y promedio de totalAmount de las
	// órdenes cuyo orderDate cae en [start, end].
	GetStatsBetween(ctx context.Context, start, end time.Time) (OrderStats, error)
}
