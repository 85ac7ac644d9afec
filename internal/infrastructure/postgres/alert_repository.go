package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/analytics-api/internal/domain"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `a.id, a.type, a.title, a.message, a.severity, a.is_read, a.created_at, a.metadata`

// AlertRepo persistencia de alertas sobre PostgreSQL.
// Metadata se guarda como JSONB; pgx lo mapea a map[string]any directamente.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// Create inserta la alerta y devuelve la entidad con ID y CreatedAt de la DB.
func (r *AlertRepo) Create(ctx context.Context, alert *entity.Alert) (*entity.Alert, error) {
	const query = `
	INSERT INTO alerts (type, title, message, severity, is_read, created_at, metadata)
	VALUES ($1, $2, $3, $4, false, now(), $5)
	RETURNING id, created_at`

	created := *alert
	created.IsRead = false
	err := r.pool.QueryRow(ctx, query,
		alert.Type, alert.Title, alert.Message, alert.Severity, alert.Metadata,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert alert: %w", err)
	}
	return &created, nil
}

// GetByID devuelve la alerta o domain.ErrNotFound.
func (r *AlertRepo) GetByID(ctx context.Context, id int64) (*entity.Alert, error) {
	query := fmt.Sprintf(`SELECT %s FROM alerts a WHERE a.id = $1`, alertColumns)

	var a entity.Alert
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Type, &a.Title, &a.Message, &a.Severity, &a.IsRead, &a.CreatedAt, &a.Metadata,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// ListAll lista alertas más recientes primero, paginadas, con total.
func (r *AlertRepo) ListAll(ctx context.Context, limit, offset int) ([]entity.Alert, int64, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM alerts a
	ORDER BY a.created_at DESC
	LIMIT $1 OFFSET $2`, alertColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list alerts: %w", err)
	}
	alerts, err := scanAlerts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list alerts scan: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM alerts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count alerts: %w", err)
	}
	return alerts, total, nil
}

// ListUnread alertas no leídas, más recientes primero.
func (r *AlertRepo) ListUnread(ctx context.Context) ([]entity.Alert, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM alerts a
	WHERE a.is_read = false
	ORDER BY a.created_at DESC`, alertColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unread alerts: %w", err)
	}
	return scanAlerts(rows)
}

// ListBySeverity alertas por severidad, más recientes primero.
func (r *AlertRepo) ListBySeverity(ctx context.Context, severity string) ([]entity.Alert, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM alerts a
	WHERE a.severity = $1
	ORDER BY a.created_at DESC`, alertColumns)

	rows, err := r.pool.Query(ctx, query, severity)
	if err != nil {
		return nil, fmt.Errorf("alerts by severity: %w", err)
	}
	return scanAlerts(rows)
}

// ListByType alertas por tipo, más recientes primero.
func (r *AlertRepo) ListByType(ctx context.Context, alertType string) ([]entity.Alert, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM alerts a
	WHERE a.type = $1
	ORDER BY a.created_at DESC`, alertColumns)

	rows, err := r.pool.Query(ctx, query, alertType)
	if err != nil {
		return nil, fmt.Errorf("alerts by type: %w", err)
	}
	return scanAlerts(rows)
}

// CountUnread número de alertas con is_read = false.
func (r *AlertRepo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM alerts WHERE is_read = false`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread alerts: %w", err)
	}
	return n, nil
}

// MarkRead pone is_read = true; ErrNotFound si el id no existe.
func (r *AlertRepo) MarkRead(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE alerts SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAlerts(rows pgx.Rows) ([]entity.Alert, error) {
	defer rows.Close()
	var alerts []entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(
			&a.ID, &a.Type, &a.Title, &a.Message, &a.Severity, &a.IsRead, &a.CreatedAt, &a.Metadata,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
