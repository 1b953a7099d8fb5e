package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Almacen-api/internal/application/dto"
	"github.com/jcardenas/Almacen-api/internal/application/usecase"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// ReportHandler reportes de solo lectura sobre el índice de stock (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func stockFilterFromQuery(c *fiber.Ctx) repository.StockFilter {
	return repository.StockFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
		CategoryID: c.Query("category_id"),
		SupplierID: c.Query("supplier_id"),
	}
}

// StockLevels godoc
// @Summary      Niveles de stock por producto y ubicación
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Param        limit        query  int     false  "Máximo de filas (default 20, tope 100)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.StockLevelListResponse
// @Router       /api/reports/stock-levels [get]
func (h *ReportHandler) StockLevels(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.StockLevels(c.Context(), stockFilterFromQuery(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock en o por debajo del mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Param        limit        query  int     false  "Máximo de filas (default 20, tope 100)"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.StockLevelListResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.LowStock(c.Context(), stockFilterFromQuery(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TotalValue godoc
// @Summary      Valor total del inventario a costo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TotalValueResponse
// @Router       /api/reports/total-value [get]
func (h *ReportHandler) TotalValue(c *fiber.Ctx) error {
	out, err := h.uc.TotalValue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
