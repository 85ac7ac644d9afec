package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. SKU es único.
// Rating va de 0 a 5; Inventory nunca es negativo.
type Product struct {
	ID          int64
	Name        string
	SKU         string
	Price       decimal.Decimal
	CostPrice   decimal.Decimal
	Inventory   int
	CategoryID  *int64
	VendorID    *int64
	Rating      decimal.Decimal
	ReviewCount int
	IsActive    bool
	CreatedAt   time.Time
}
