package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Product.
const (
	UnitPiece = "unit"
	UnitKg    = "kg"
	UnitGram  = "g"
	UnitLiter = "l"
	UnitMl    = "ml"
	UnitMeter = "m"
	UnitBox   = "box"
)

// ValidUnitMeasure indica si la unidad de medida es una de las conocidas.
func ValidUnitMeasure(u string) bool {
	switch u {
	case UnitPiece, UnitKg, UnitGram, UnitLiter, UnitMl, UnitMeter, UnitBox:
		return true
	}
	return false
}

// Product representa un producto o SKU del catálogo (multi-ubicación).
// El stock se maneja por ubicación en StockEntry; aquí solo viven los atributos.
// IsActive=false es borrado suave: el producto sigue existiendo para el motor.
type Product struct {
	ID          string
	SKU         string // único
	Name        string
	Description string
	UnitMeasure string
	UnitCost    decimal.Decimal
	UnitPrice   decimal.Decimal
	MinStock    decimal.Decimal  // >= 0, umbral de stock bajo
	MaxStock    *decimal.Decimal // opcional; si existe, >= MinStock
	CategoryID  string           // vacío si no tiene
	SupplierID  string           // vacío si no tiene
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
