package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer es la cabecera de un traslado entre ubicaciones: enlaza los dos
// movimientos gemelos (transfer_out en origen, transfer_in en destino) que
// se comprometen siempre juntos.
type Transfer struct {
	ID             int64
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal // magnitud, siempre > 0
	ActorID        string
	Note           string
	OutMovementID  int64
	InMovementID   int64
	CreatedAt      time.Time
}
