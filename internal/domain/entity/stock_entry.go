package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa el stock actual de un producto en una ubicación.
// Derivado del log de movimientos: Quantity == Σ cantidades firmadas comprometidas.
// Única por (ProductID, LocationID); nunca negativa en estado comprometido.
type StockEntry struct {
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
