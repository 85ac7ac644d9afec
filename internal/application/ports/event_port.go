package ports

// Tipos de evento publicados por la API.
const (
	EventAlertCreated = "ALERT_CREATED"
	EventAlertRead    = "ALERT_READ"
)

// EventNotifier puerto de notificación fire-and-forget.
// La llamada nunca bloquea ni falla: un fallo de publicación se registra en el
// log y se descarta, sin afectar la operación que lo originó.
type EventNotifier interface {
	// NotifyAlertEvent emite un evento de alerta (ALERT_CREATED, ALERT_READ).
	NotifyAlertEvent(eventType string, alertID int64, data map[string]any)
}
