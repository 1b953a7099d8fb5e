package repository

import (
	"context"
	"time"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos. Campos vacíos/nil no filtran.
type MovementFilter struct {
	ProductID  string
	LocationID string
	ActorID    string
	Kind       string
	Reference  string
	From       *time.Time
	To         *time.Time
}

// MovementRepository define el puerto de persistencia del log de movimientos.
// El log es append-only: no existen Update ni Delete.
type MovementRepository interface {
	// Create persiste el movimiento y rellena movement.ID (secuencia monótona).
	Create(ctx context.Context, movement *entity.Movement) error
	// SetPeer enlaza el movimiento con su gemelo de traslado.
	SetPeer(ctx context.Context, id, peerID int64) error
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	// List ordena por created_at DESC, id DESC para paginación estable.
	List(ctx context.Context, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
}
