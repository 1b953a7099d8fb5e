package repository

import (
	"context"
	"time"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// TransferFilter filtros para listar traslados.
type TransferFilter struct {
	ProductID      string
	FromLocationID string
	ToLocationID   string
	ActorID        string
	From           *time.Time
	To             *time.Time
}

// TransferRepository define el puerto de persistencia para cabeceras de traslado.
// Las cabeceras son inmutables una vez creadas.
type TransferRepository interface {
	// Create persiste el traslado y rellena transfer.ID.
	Create(ctx context.Context, transfer *entity.Transfer) error
	GetByID(ctx context.Context, id int64) (*entity.Transfer, error)
	List(ctx context.Context, filter TransferFilter, limit, offset int) ([]*entity.Transfer, error)
}
