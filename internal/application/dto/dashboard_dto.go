package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetricsDTO respuesta de GET /api/dashboard/metrics.
// KPIs del mes en curso (día 1 a las 00:00 hasta ahora).
type DashboardMetricsDTO struct {
	TotalSales        decimal.Decimal `json:"total_sales"`         // suma de totalAmount del mes
	TotalOrders       int64           `json:"total_orders"`        // órdenes del mes
	TotalCustomers    int64           `json:"total_customers"`     // clientes registrados (histórico)
	NewCustomers      int64           `json:"new_customers"`       // clientes registrados en el mes en curso
	AverageOrderValue decimal.Decimal `json:"average_order_value"` // promedio de totalAmount del mes
	ConversionRate    decimal.Decimal `json:"conversion_rate"`     // clientes / órdenes * 100 (ver nota en el use case)
	UnreadAlerts      int64           `json:"unread_alerts"`
}

// SalesChartPointDTO un punto de la gráfica de ventas (un rollup diario).
type SalesChartPointDTO struct {
	Date              time.Time       `json:"date"`
	Sales             decimal.Decimal `json:"sales"`
	Orders            int             `json:"orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}
