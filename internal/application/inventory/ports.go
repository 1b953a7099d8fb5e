package inventory

import (
	"context"

	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor: los dos
// movimientos de un traslado y su cabecera se comprometen juntos o ninguno.
// Las implementaciones traducen fallos de serialización a domain.ErrSerialization.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
