package usecase

import (
	"context"

	"github.com/jcardenas/Almacen-api/internal/application/dto"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura sobre el índice de stock.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// StockLevels niveles de stock actuales con filtros de producto, ubicación,
// categoría y proveedor.
func (uc *ReportUseCase) StockLevels(ctx context.Context, filter repository.StockFilter, limit, offset int) (*dto.StockLevelListResponse, error) {
	rows, err := uc.repo.ListStock(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockLevelList(rows, limit, offset), nil
}

// LowStock entradas con quantity <= min_stock del producto.
func (uc *ReportUseCase) LowStock(ctx context.Context, filter repository.StockFilter, limit, offset int) (*dto.StockLevelListResponse, error) {
	rows, err := uc.repo.ListLowStock(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockLevelList(rows, limit, offset), nil
}

// TotalValue valor total del inventario: Σ quantity × unit_cost.
// Se usa unit_cost (costo de adquisición) y no unit_price: el reporte valora
// existencias, no ventas potenciales.
func (uc *ReportUseCase) TotalValue(ctx context.Context) (*dto.TotalValueResponse, error) {
	total, err := uc.repo.TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalValueResponse{TotalValue: total}, nil
}

func toStockLevelList(rows []repository.StockLevelResult, limit, offset int) *dto.StockLevelListResponse {
	items := make([]dto.StockLevelResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockLevelResponse{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			ProductName:  r.ProductName,
			LocationID:   r.LocationID,
			LocationName: r.LocationName,
			Quantity:     r.Quantity,
			MinStock:     r.MinStock,
			UpdatedAt:    r.UpdatedAt,
		})
	}
	return &dto.StockLevelListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
