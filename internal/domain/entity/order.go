package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de una orden.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusReturned  = "RETURNED"
)

// Order representa una orden de compra. TotalAmount siempre es >= 0.
// Las órdenes las crea otro subsistema; esta API solo las lee para agregados.
type Order struct {
	ID            int64
	CustomerID    int64
	TotalAmount   decimal.Decimal
	Status        string
	OrderDate     time.Time
	ShippedDate   *time.Time
	DeliveredDate *time.Time
}

// OrderItem línea de una orden; solo se usa como join para el ranking de productos.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}
