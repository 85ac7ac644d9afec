package dto

import "time"

// Tipos de entidad de los eventos publicados.
const (
	EventEntityOrder     = "ORDER"
	EventEntityProduct   = "PRODUCT"
	EventEntityAlert     = "ALERT"
	EventEntityAnalytics = "ANALYTICS"
)

// EventSource identificador de origen que viaja en todos los eventos.
const EventSource = "analytics-api"

// EventMessage payload publicado al broker tras operaciones de escritura.
// EntityID es nil para eventos agregados (entityType ANALYTICS).
type EventMessage struct {
	EventType  string         `json:"eventType"`
	EntityType string         `json:"entityType"`
	EntityID   *int64         `json:"entityId"`
	Data       map[string]any `json:"data"`
	Timestamp  time.Time      `json:"timestamp"`
	Source     string         `json:"source"`
}

// NewEventMessage construye un EventMessage con timestamp actual y source fijo.
func NewEventMessage(eventType, entityType string, entityID *int64, data map[string]any) EventMessage {
	return EventMessage{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Data:       data,
		Timestamp:  time.Now().UTC(),
		Source:     EventSource,
	}
}
