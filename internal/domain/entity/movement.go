package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcardenas/Almacen-api/internal/domain"
)

// Tipos de movimiento de inventario. transfer_out/transfer_in solo los genera
// el motor al registrar un traslado; nunca llegan directo desde la API.
const (
	MovementKindIncoming    = "incoming"     // entrada
	MovementKindOutgoing    = "outgoing"     // salida
	MovementKindAdjust      = "adjust"       // ajuste (signo libre, nunca cero)
	MovementKindTransferOut = "transfer_out" // salida por traslado (negativo, en origen)
	MovementKindTransferIn  = "transfer_in"  // entrada por traslado (positivo, en destino)
)

// Movement es un evento inmutable del log de movimientos: un cambio de stock
// de un producto en una ubicación, siempre con cantidad firmada.
type Movement struct {
	ID         int64
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal // firmada: positiva entradas, negativa salidas
	Kind       string
	ActorID    string
	Reference  string
	Note       string
	PeerID     *int64 // movimiento gemelo en traslados
	CreatedAt  time.Time
}

// ValidRequestKind indica si el tipo puede venir en una petición de movimiento simple.
func ValidRequestKind(kind string) bool {
	switch kind {
	case MovementKindIncoming, MovementKindOutgoing, MovementKindAdjust:
		return true
	}
	return false
}

// ValidKind indica si el tipo es alguno de los cinco conocidos (incluye traslados).
func ValidKind(kind string) bool {
	switch kind {
	case MovementKindTransferOut, MovementKindTransferIn:
		return true
	}
	return ValidRequestKind(kind)
}

// SignedQuantity canoniza la cantidad según el tipo. La API recibe magnitudes
// para incoming/outgoing; el log siempre guarda el valor firmado.
//   - incoming: qty > 0, se guarda positiva
//   - outgoing: qty > 0 (magnitud), se guarda negativa
//   - adjust:   qty ≠ 0, se guarda tal cual
func SignedQuantity(kind string, qty decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case MovementKindIncoming:
		if !qty.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return qty, nil
	case MovementKindOutgoing:
		if !qty.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return qty.Neg(), nil
	case MovementKindAdjust:
		if qty.IsZero() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return qty, nil
	}
	return decimal.Zero, domain.ErrInvalidInput
}
