package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockFilter filtros para los reportes de stock. Campos vacíos no filtran.
type StockFilter struct {
	ProductID  string
	LocationID string
	CategoryID string
	SupplierID string
}

// StockLevelResult fila del reporte de niveles de stock (stock + atributos
// de producto y ubicación ya resueltos).
type StockLevelResult struct {
	ProductID    string
	SKU          string
	ProductName  string
	LocationID   string
	LocationName string
	Quantity     decimal.Decimal
	MinStock     decimal.Decimal
	UpdatedAt    time.Time
}

// ReportRepository consultas de solo lectura sobre el índice de stock.
// No toman locks de escritura; reflejan el último snapshot comprometido.
type ReportRepository interface {
	ListStock(ctx context.Context, filter StockFilter, limit, offset int) ([]StockLevelResult, error)
	// ListLowStock devuelve el subconjunto donde quantity <= products.min_stock.
	ListLowStock(ctx context.Context, filter StockFilter, limit, offset int) ([]StockLevelResult, error)
	// TotalValue devuelve Σ (quantity × products.unit_cost) sobre todo el stock.
	TotalValue(ctx context.Context) (decimal.Decimal, error)
}
