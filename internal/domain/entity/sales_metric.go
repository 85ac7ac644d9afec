package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetric rollup diario de ventas. Lo escribe un proceso externo de
// consolidación; esta API solo lo lee (gráfica de ventas del dashboard).
type SalesMetric struct {
	ID                int64
	Date              time.Time
	TotalSales        decimal.Decimal
	TotalOrders       int
	AverageOrderValue decimal.Decimal
	ReturnRate        decimal.Decimal
	NewCustomers      int
}
