package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location representa una bodega, sucursal o sub-ubicación donde se almacena
// inventario. Jerárquica opcional vía ParentID (lista de adyacencia, acíclica).
type Location struct {
	ID              string
	Name            string
	Address         string
	ParentID        string           // vacío si es raíz
	StorageCapacity *decimal.Decimal // opcional
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
