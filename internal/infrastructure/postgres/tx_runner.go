package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcardenas/Almacen-api/internal/application/inventory"
	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Aislamiento repeatable read + locks de fila explícitos (SELECT FOR UPDATE)
// sobre stock_entries; los fallos de serialización salen como
// domain.ErrSerialization para que el motor los reintente.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	transferRepo repository.TransferRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	stockRepo := NewStockRepository(tx)
	transferRepo := NewTransferRepository(tx)

	if err := fn(movRepo, stockRepo, transferRepo); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", domain.ErrSerialization, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", domain.ErrSerialization, err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
