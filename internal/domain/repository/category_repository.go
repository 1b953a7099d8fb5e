package repository

import (
	"context"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Delete es borrado duro: la implementación devuelve domain.ErrConflict si la
// categoría está referenciada por productos o subcategorías.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
