package dto

import "time"

// CreateAlertRequest entrada para crear una alerta.
type CreateAlertRequest struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Severity string         `json:"severity"`
	Metadata map[string]any `json:"metadata"`
}

// AlertDTO salida de una alerta.
type AlertDTO struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Severity  string         `json:"severity"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AlertListResponse lista paginada de alertas.
type AlertListResponse struct {
	Items []AlertDTO   `json:"items"`
	Page  PageResponse `json:"page"`
}

// UnreadCountResponse respuesta de GET /api/alerts/count/unread.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
