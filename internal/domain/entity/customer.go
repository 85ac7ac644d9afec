package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la tienda. Email es único.
type Customer struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	TotalSpent       decimal.Decimal // acumulado histórico, >= 0
	OrderCount       int             // >= 0
	RegistrationDate time.Time
}
