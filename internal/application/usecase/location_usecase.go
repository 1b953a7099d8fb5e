package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcardenas/Almacen-api/internal/application/dto"
	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones (árbol por ParentID,
// borrado suave vía IsActive).
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación activa. Si trae padre, el padre debe existir.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StorageCapacity != nil && in.StorageCapacity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now().UTC()
	location := &entity.Location{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Address:         in.Address,
		ParentID:        in.ParentID,
		StorageCapacity: in.StorageCapacity,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Update actualiza una ubicación. Cambios de ParentID validan la ausencia
// de ciclos igual que en categorías.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	if in.ParentID != nil {
		if *in.ParentID != "" {
			if err := uc.checkNoCycle(ctx, id, *in.ParentID); err != nil {
				return nil, err
			}
		}
		location.ParentID = *in.ParentID
	}
	if in.StorageCapacity != nil {
		if in.StorageCapacity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		location.StorageCapacity = in.StorageCapacity
	}
	if in.IsActive != nil {
		location.IsActive = *in.IsActive
	}
	location.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones con paginación.
func (uc *LocationUseCase) List(ctx context.Context, limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete desactiva la ubicación (borrado suave): el historial de movimientos
// la sigue referenciando.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, id)
}

// checkNoCycle recorre la cadena de padres desde newParentID y falla con
// ErrConflict si id aparece como su propio ancestro.
func (uc *LocationUseCase) checkNoCycle(ctx context.Context, id, newParentID string) error {
	seen := map[string]bool{id: true}
	current := newParentID
	for current != "" {
		if seen[current] {
			return domain.ErrConflict
		}
		seen[current] = true
		node, err := uc.repo.GetByID(ctx, current)
		if err != nil {
			return err
		}
		if node == nil {
			return domain.ErrNotFound
		}
		current = node.ParentID
	}
	return nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:              l.ID,
		Name:            l.Name,
		Address:         l.Address,
		ParentID:        l.ParentID,
		StorageCapacity: l.StorageCapacity,
		IsActive:        l.IsActive,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
