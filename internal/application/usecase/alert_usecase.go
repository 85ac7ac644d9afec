package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/analytics-api/internal/application/dto"
	"github.com/jhoicas/analytics-api/internal/application/ports"
	"github.com/jhoicas/analytics-api/internal/domain"
	"github.com/jhoicas/analytics-api/internal/domain/entity"
	"github.com/jhoicas/analytics-api/internal/domain/repository"
)

const keyUnreadAlerts = "unread"

// AlertUseCase ciclo de vida de alertas: consulta, creación y marcado como
// leída. Las escrituras desalojan el namespace completo de caché y emiten un
// evento fire-and-forget; entre el commit y el desalojo un lector concurrente
// puede ver datos cacheados viejos (consistencia eventual aceptada).
type AlertUseCase struct {
	repo     repository.AlertRepository
	cache    ports.CacheStore
	notifier ports.EventNotifier
}

// NewAlertUseCase construye el caso de uso. cache y notifier pueden ser nil.
func NewAlertUseCase(repo repository.AlertRepository, cache ports.CacheStore, notifier ports.EventNotifier) *AlertUseCase {
	return &AlertUseCase{repo: repo, cache: cache, notifier: notifier}
}

// ListAll lista todas las alertas paginadas, más recientes primero.
func (uc *AlertUseCase) ListAll(ctx context.Context, page dto.PageRequest) (*dto.AlertListResponse, error) {
	if !page.Valid() {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	alerts, total, err := uc.repo.ListAll(ctx, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("alertas: listar: %w", err)
	}
	return &dto.AlertListResponse{
		Items: toAlertDTOs(alerts),
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

// ListUnread lista las alertas no leídas (cacheadas hasta la próxima escritura).
func (uc *AlertUseCase) ListUnread(ctx context.Context) ([]dto.AlertDTO, error) {
	if cached, ok := uc.cacheGet(ports.CacheAlerts, keyUnreadAlerts); ok {
		if items, ok := cached.([]dto.AlertDTO); ok {
			return items, nil
		}
	}

	alerts, err := uc.repo.ListUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: no leídas: %w", err)
	}
	items := toAlertDTOs(alerts)
	uc.cachePut(ports.CacheAlerts, keyUnreadAlerts, items)
	return items, nil
}

// ListBySeverity lista alertas por severidad. Severidades desconocidas son error de entrada.
func (uc *AlertUseCase) ListBySeverity(ctx context.Context, severity string) ([]dto.AlertDTO, error) {
	if !entity.KnownSeverity(severity) {
		return nil, domain.ErrInvalidInput
	}
	alerts, err := uc.repo.ListBySeverity(ctx, severity)
	if err != nil {
		return nil, fmt.Errorf("alertas: por severidad: %w", err)
	}
	return toAlertDTOs(alerts), nil
}

// ListByType lista alertas por tipo. Tipos desconocidos son error de entrada.
func (uc *AlertUseCase) ListByType(ctx context.Context, alertType string) ([]dto.AlertDTO, error) {
	if !entity.KnownAlertType(alertType) {
		return nil, domain.ErrInvalidInput
	}
	alerts, err := uc.repo.ListByType(ctx, alertType)
	if err != nil {
		return nil, fmt.Errorf("alertas: por tipo: %w", err)
	}
	return toAlertDTOs(alerts), nil
}

// CountUnread devuelve el número de alertas no leídas. Siempre se consulta a la
// DB: el invariante «conteo == len(no leídas)» se garantiza por consulta.
func (uc *AlertUseCase) CountUnread(ctx context.Context) (int64, error) {
	n, err := uc.repo.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("alertas: conteo no leídas: %w", err)
	}
	return n, nil
}

// Create persiste una alerta nueva, desaloja la caché de alertas y emite
// ALERT_CREATED. El evento es best-effort: su fallo no afecta la creación.
func (uc *AlertUseCase) Create(ctx context.Context, in dto.CreateAlertRequest) (*dto.AlertDTO, error) {
	if in.Title == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.KnownAlertType(in.Type) || !entity.KnownSeverity(in.Severity) {
		return nil, domain.ErrInvalidInput
	}

	alert, err := uc.repo.Create(ctx, &entity.Alert{
		Type:     in.Type,
		Title:    in.Title,
		Message:  in.Message,
		Severity: in.Severity,
		Metadata: in.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("alertas: crear: %w", err)
	}

	uc.evictAlerts()
	uc.notify(ports.EventAlertCreated, alert.ID, map[string]any{
		"alertType": alert.Type,
		"severity":  alert.Severity,
		"title":     alert.Title,
	})

	out := toAlertDTO(*alert)
	return &out, nil
}

// MarkAsRead marca la alerta como leída. La transición es de una sola vía:
// si la alerta ya estaba leída la llamada es un no-op definido (devuelve la
// alerta, no emite evento ni desaloja caché). Devuelve domain.ErrNotFound si
// el id no existe.
func (uc *AlertUseCase) MarkAsRead(ctx context.Context, id int64) (*dto.AlertDTO, error) {
	alert, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if alert.IsRead {
		out := toAlertDTO(*alert)
		return &out, nil
	}

	if err := uc.repo.MarkRead(ctx, id); err != nil {
		return nil, fmt.Errorf("alertas: marcar leída: %w", err)
	}
	alert.IsRead = true

	uc.evictAlerts()
	uc.notify(ports.EventAlertRead, alert.ID, map[string]any{
		"alertType": alert.Type,
	})

	out := toAlertDTO(*alert)
	return &out, nil
}

func (uc *AlertUseCase) evictAlerts() {
	if uc.cache != nil {
		uc.cache.EvictAll(ports.CacheAlerts)
	}
}

func (uc *AlertUseCase) notify(eventType string, alertID int64, data map[string]any) {
	if uc.notifier != nil {
		uc.notifier.NotifyAlertEvent(eventType, alertID, data)
	}
}

func (uc *AlertUseCase) cacheGet(namespace, key string) (any, bool) {
	if uc.cache == nil {
		return nil, false
	}
	return uc.cache.Get(namespace, key)
}

func (uc *AlertUseCase) cachePut(namespace, key string, value any) {
	if uc.cache != nil {
		uc.cache.Put(namespace, key, value)
	}
}

func toAlertDTO(a entity.Alert) dto.AlertDTO {
	return dto.AlertDTO{
		ID:        a.ID,
		Type:      a.Type,
		Title:     a.Title,
		Message:   a.Message,
		Severity:  a.Severity,
		IsRead:    a.IsRead,
		CreatedAt: a.CreatedAt,
		Metadata:  a.Metadata,
	}
}

func toAlertDTOs(alerts []entity.Alert) []dto.AlertDTO {
	items := make([]dto.AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, toAlertDTO(a))
	}
	return items
}
