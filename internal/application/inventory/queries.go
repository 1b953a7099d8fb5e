package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// HistoryQueries lecturas del log de movimientos y de traslados. Solo lectura:
// el log nunca se actualiza ni se borra después del commit.
type HistoryQueries struct {
	movRepo      repository.MovementRepository
	transferRepo repository.TransferRepository
	stockRepo    repository.StockRepository
}

// NewHistoryQueries construye las consultas de historial.
func NewHistoryQueries(
	movRepo repository.MovementRepository,
	transferRepo repository.TransferRepository,
	stockRepo repository.StockRepository,
) *HistoryQueries {
	return &HistoryQueries{movRepo: movRepo, transferRepo: transferRepo, stockRepo: stockRepo}
}

// ListMovements lista movimientos con filtros y paginación estable
// (orden created_at DESC, id DESC).
func (q *HistoryQueries) ListMovements(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	return q.movRepo.List(ctx, filter, limit, offset)
}

// GetMovement obtiene un movimiento por id; ErrNotFound si no existe.
func (q *HistoryQueries) GetMovement(ctx context.Context, id int64) (*entity.Movement, error) {
	m, err := q.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// ListTransfers lista traslados con filtros y paginación.
func (q *HistoryQueries) ListTransfers(ctx context.Context, filter repository.TransferFilter, limit, offset int) ([]*entity.Transfer, error) {
	return q.transferRepo.List(ctx, filter, limit, offset)
}

// GetTransfer obtiene un traslado por id; ErrNotFound si no existe.
func (q *HistoryQueries) GetTransfer(ctx context.Context, id int64) (*entity.Transfer, error) {
	t, err := q.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// GetStock devuelve la cantidad actual para (producto, ubicación); 0 si no
// existe entrada de stock.
func (q *HistoryQueries) GetStock(ctx context.Context, productID, locationID string) (decimal.Decimal, error) {
	stock, err := q.stockRepo.Get(ctx, productID, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	return stock.Quantity, nil
}
