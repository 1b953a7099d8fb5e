package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// MovementRequest body para POST /api/inventory/{add,remove,adjust}.
// Quantity es magnitud en add/remove y valor firmado (≠ 0) en adjust.
type MovementRequest struct {
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  string          `json:"reference,omitempty"`
	Note       string          `json:"note,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfer.
type TransferRequest struct {
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Note           string          `json:"note,omitempty"`
}

// MovementResponse representación JSON de un movimiento del log.
type MovementResponse struct {
	ID         int64           `json:"id"`
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"` // firmada
	Kind       string          `json:"kind"`
	ActorID    string          `json:"actor_id"`
	Reference  string          `json:"reference,omitempty"`
	Note       string          `json:"note,omitempty"`
	PeerID     *int64          `json:"peer_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToMovementResponse convierte la entidad a su representación JSON.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		LocationID: m.LocationID,
		Quantity:   m.Quantity,
		Kind:       m.Kind,
		ActorID:    m.ActorID,
		Reference:  m.Reference,
		Note:       m.Note,
		PeerID:     m.PeerID,
		CreatedAt:  m.CreatedAt,
	}
}

// MovementListResponse página de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// TransferResponse representación JSON de un traslado.
type TransferResponse struct {
	ID             int64           `json:"id"`
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	ActorID        string          `json:"actor_id"`
	Note           string          `json:"note,omitempty"`
	OutMovementID  int64           `json:"out_movement_id"`
	InMovementID   int64           `json:"in_movement_id"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToTransferResponse convierte la entidad a su representación JSON.
func ToTransferResponse(t *entity.Transfer) *TransferResponse {
	if t == nil {
		return nil
	}
	return &TransferResponse{
		ID:             t.ID,
		ProductID:      t.ProductID,
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		Quantity:       t.Quantity,
		ActorID:        t.ActorID,
		Note:           t.Note,
		OutMovementID:  t.OutMovementID,
		InMovementID:   t.InMovementID,
		CreatedAt:      t.CreatedAt,
	}
}

// TransferListResponse página de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
