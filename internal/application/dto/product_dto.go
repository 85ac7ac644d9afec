package dto

import "github.com/shopspring/decimal"

// ProductDTO proyección de un producto para las vistas de analítica.
// UnitsSold y TotalRevenue solo vienen poblados en el ranking de más vendidos.
type ProductDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Inventory    int             `json:"inventory"`
	Rating       decimal.Decimal `json:"rating"`
	ReviewCount  int             `json:"review_count"`
	UnitsSold    int64           `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductDTO `json:"items"`
	Page  PageResponse `json:"page"`
}
