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

// ProductUseCase casos de uso CRUD para productos. El stock se maneja por
// ubicación vía el motor de inventario, nunca desde aquí.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un nuevo producto activo. SKU único; min_stock >= 0;
// max_stock, si viene, >= min_stock.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitMeasure == "" {
		in.UnitMeasure = entity.UnitPiece
	}
	if !entity.ValidUnitMeasure(in.UnitMeasure) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxStock != nil && in.MaxStock.LessThan(in.MinStock) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.SupplierID != "" {
		sup, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
		if err != nil {
			return nil, err
		}
		if sup == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		UnitMeasure: in.UnitMeasure,
		UnitCost:    in.UnitCost,
		UnitPrice:   in.UnitPrice,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El SKU es inmutable.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.UnitMeasure != nil {
		if !entity.ValidUnitMeasure(*in.UnitMeasure) {
			return nil, domain.ErrInvalidInput
		}
		product.UnitMeasure = *in.UnitMeasure
	}
	if in.UnitCost != nil {
		product.UnitCost = *in.UnitCost
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = in.MaxStock
	}
	if product.MaxStock != nil && product.MaxStock.LessThan(product.MinStock) {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			cat, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
			if err != nil {
				return nil, err
			}
			if cat == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		if *in.SupplierID != "" {
			sup, err := uc.supplierRepo.GetByID(ctx, *in.SupplierID)
			if err != nil {
				return nil, err
			}
			if sup == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.SupplierID = *in.SupplierID
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete desactiva el producto (borrado suave). Nunca se borra en duro
// mientras el log de movimientos lo referencie.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		UnitMeasure: p.UnitMeasure,
		UnitCost:    p.UnitCost,
		UnitPrice:   p.UnitPrice,
		MinStock:    p.MinStock,
		MaxStock:    p.MaxStock,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
