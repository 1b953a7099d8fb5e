package repository

import (
	"context"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por
// producto+ubicación. El motor de inventario es su único escritor.
type StockRepository interface {
	// Get devuelve la entrada de stock; si no existe, una con Quantity = 0.
	Get(ctx context.Context, productID, locationID string) (*entity.StockEntry, error)
	// LockOrCreate bloquea la fila con SELECT FOR UPDATE, creándola con
	// cantidad 0 si no existe (upsert seguro contra lost update).
	// Solo tiene sentido dentro de una transacción.
	LockOrCreate(ctx context.Context, productID, locationID string) (*entity.StockEntry, error)
	// Upsert persiste la cantidad actual de la entrada.
	Upsert(ctx context.Context, stock *entity.StockEntry) error
}
