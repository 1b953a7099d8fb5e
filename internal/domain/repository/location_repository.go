package repository

import (
	"context"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	List(ctx context.Context, limit, offset int) ([]*entity.Location, error)
	// Deactivate marca la ubicación como inactiva (borrado suave).
	Deactivate(ctx context.Context, id string) error
}
