package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevelResponse fila del reporte de niveles de stock.
type StockLevelResponse struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinStock     decimal.Decimal `json:"min_stock"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockLevelListResponse página del reporte de stock.
type StockLevelListResponse struct {
	Items []StockLevelResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// TotalValueResponse valor total del inventario a costo.
type TotalValueResponse struct {
	TotalValue decimal.Decimal `json:"total_value"` // Σ quantity × unit_cost
}
