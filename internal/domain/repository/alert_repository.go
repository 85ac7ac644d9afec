package repository

import (
	"context"

	"github.com/jhoicas/analytics-api/internal/domain/entity"
)

// AlertRepository define la persistencia de alertas.
// Es la única entidad con escritura en esta API (creación y marcado como leída).
type AlertRepository interface {
	// Create persiste una alerta nueva y devuelve la entidad con ID y CreatedAt asignados.
	Create(ctx context.Context, alert *entity.Alert) (*entity.Alert, error)

	// GetByID devuelve la alerta o domain.ErrNotFound si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Alert, error)

	// ListAll lista todas las alertas, más recientes primero, paginadas.
	// Devuelve también el total de alertas.
	ListAll(ctx context.Context, limit, offset int) ([]entity.Alert, int64, error)

	// ListUnread lista las alertas no leídas, más recientes primero.
	ListUnread(ctx context.Context) ([]entity.Alert, error)

	// ListBySeverity lista alertas por severidad, más recientes primero.
	ListBySeverity(ctx context.Context, severity string) ([]entity.Alert, error)

	// ListByType lista alertas por tipo, más recientes primero.
	ListByType(ctx context.Context, alertType string) ([]entity.Alert, error)

	// CountUnread devuelve el número de alertas no leídas.
	// El invariante «conteo == len(ListUnread)» se garantiza por consulta, no
	// con contadores incrementales.
	CountUnread(ctx context.Context) (int64, error)

	// MarkRead pone is_read = true. Devuelve domain.ErrNotFound si el id no existe.
	MarkRead(ctx context.Context, id int64) error
}
