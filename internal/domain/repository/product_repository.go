package repository

import (
	"context"

	"github.com/jhoicas/analytics-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TopProductResult fila cruda del ranking de productos por ingreso.
// Lo produce la DB; el use case lo convierte en DTO.
type TopProductResult struct {
	Product   entity.Product
	UnitsSold int64
	Revenue   decimal.Decimal // SUM(quantity * unit_price) de las líneas de orden
}

// ProductRepository define las consultas de lectura sobre el catálogo.
// Todas las consultas excluyen productos inactivos.
type ProductRepository interface {
	// ListActive lista productos activos paginados, ordenados por id ascendente
	// para que la paginación sea estable. Devuelve también el total de activos.
	ListActive(ctx context.Context, limit, offset int) ([]entity.Product, int64, error)

	// TopSelling devuelve los `limit` productos activos con mayor ingreso
	// (SUM(quantity * unit_price) sobre las líneas de orden), descendente.
	// Empates se resuelven por id ascendente.
	TopSelling(ctx context.Context, limit int) ([]TopProductResult, error)

	// LowStock devuelve los productos activos con inventory < threshold.
	LowStock(ctx context.Context, threshold int) ([]entity.Product, error)

	// SearchByName busca por subcadena de nombre (case-insensitive), solo activos,
	// paginado y ordenado por id ascendente. Devuelve también el total de coincidencias.
	SearchByName(ctx context.Context, query string, limit, offset int) ([]entity.Product, int64, error)
}
