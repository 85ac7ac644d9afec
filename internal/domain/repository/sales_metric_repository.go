package repository

import (
	"context"
	"time"

	"github.com/jhoicas/analytics-api/internal/domain/entity"
)

// SalesMetricRepository lectura de los rollups diarios de ventas.
// Los rollups los escribe un proceso externo; aquí son de solo lectura.
type SalesMetricRepository interface {
	// FindBetween devuelve los rollups con fecha en [start, end], ascendente por fecha.
	FindBetween(ctx context.Context, start, end time.Time) ([]entity.SalesMetric, error)
}
