package entity

import "time"

// Severidades y tipos conocidos de alerta.
const (
	AlertSeverityLow      = "LOW"
	AlertSeverityMedium   = "MEDIUM"
	AlertSeverityHigh     = "HIGH"
	AlertSeverityCritical = "CRITICAL"

	AlertTypeInventory = "INVENTORY"
	AlertTypeSales     = "SALES"
	AlertTypeCustomer  = "CUSTOMER"
	AlertTypeSystem    = "SYSTEM"
)

// KnownSeverity indica si la severidad pertenece al conjunto válido.
func KnownSeverity(s string) bool {
	switch s {
	case AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh, AlertSeverityCritical:
		return true
	}
	return false
}

// KnownAlertType indica si el tipo pertenece al conjunto válido.
func KnownAlertType(t string) bool {
	switch t {
	case AlertTypeInventory, AlertTypeSales, AlertTypeCustomer, AlertTypeSystem:
		return true
	}
	return false
}

// Alert notificación de negocio. El único estado mutable es IsRead,
// y la transición es de una sola vía: no leída -> leída.
type Alert struct {
	ID        int64
	Type      string
	Title     string
	Message   string
	Severity  string
	IsRead    bool
	CreatedAt time.Time
	Metadata  map[string]any // JSONB libre
}
