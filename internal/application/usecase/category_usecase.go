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

// CategoryUseCase casos de uso CRUD para categorías (árbol por ParentID).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Si trae padre, el padre debe existir.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
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
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría. Cualquier cambio de ParentID valida que la
// cadena de padres siga terminando en una raíz (sin ciclos).
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ParentID != nil {
		if *in.ParentID != "" {
			if err := uc.checkNoCycle(ctx, id, *in.ParentID); err != nil {
				return nil, err
			}
		}
		category.ParentID = *in.ParentID
	}
	category.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(ctx context.Context, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borra la categoría en duro; el repositorio devuelve ErrConflict si
// está referenciada por productos o subcategorías.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// checkNoCycle verifica que asignar newParentID como padre de id no forme un
// ciclo: recorre la cadena de padres y falla si id aparece como su propio
// ancestro o si el padre no existe.
func (uc *CategoryUseCase) checkNoCycle(ctx context.Context, id, newParentID string) error {
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

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
