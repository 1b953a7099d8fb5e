package repository

import (
	"context"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Delete es borrado duro: la implementación devuelve domain.ErrConflict si el
// proveedor está referenciado por productos.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	Delete(ctx context.Context, id string) error
}
