package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcardenas/Almacen-api/internal/application/usecase"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// memReportRepo fake en memoria del puerto ReportRepository. Aplica el
// predicado de stock bajo y el filtro/paginación sobre filas sembradas, y
// registra los últimos argumentos recibidos para verificar el paso de
// parámetros desde el caso de uso.
type memReportRepo struct {
	rows  []repository.StockLevelResult
	costs map[string]decimal.Decimal // unit_cost por producto

	lastFilter repository.StockFilter
	lastLimit  int
	lastOffset int
}

func (r *memReportRepo) ListStock(_ context.Context, f repository.StockFilter, limit, offset int) ([]repository.StockLevelResult, error) {
	r.lastFilter, r.lastLimit, r.lastOffset = f, limit, offset
	return r.page(r.filter(f), limit, offset), nil
}

func (r *memReportRepo) ListLowStock(_ context.Context, f repository.StockFilter, limit, offset int) ([]repository.StockLevelResult, error) {
	r.lastFilter, r.lastLimit, r.lastOffset = f, limit, offset
	var low []repository.StockLevelResult
	for _, row := range r.filter(f) {
		if row.Quantity.LessThanOrEqual(row.MinStock) {
			low = append(low, row)
		}
	}
	return r.page(low, limit, offset), nil
}

func (r *memReportRepo) TotalValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, row := range r.rows {
		total = total.Add(row.Quantity.Mul(r.costs[row.ProductID]))
	}
	return total, nil
}

func (r *memReportRepo) filter(f repository.StockFilter) []repository.StockLevelResult {
	var out []repository.StockLevelResult
	for _, row := range r.rows {
		if f.ProductID != "" && row.ProductID != f.ProductID {
			continue
		}
		if f.LocationID != "" && row.LocationID != f.LocationID {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (r *memReportRepo) page(rows []repository.StockLevelResult, limit, offset int) []repository.StockLevelResult {
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func stockRow(productID, sku, locationID string, qty, minStock string) repository.StockLevelResult {
	return repository.StockLevelResult{
		ProductID:    productID,
		SKU:          sku,
		ProductName:  "Producto " + sku,
		LocationID:   locationID,
		LocationName: "Ubicación " + locationID,
		Quantity:     decQty(qty),
		MinStock:     decQty(minStock),
		UpdatedAt:    time.Now().UTC(),
	}
}

func decQty(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func buildReportUC() (*usecase.ReportUseCase, *memReportRepo) {
	repo := &memReportRepo{
		rows: []repository.StockLevelResult{
			stockRow("prod-1", "SKU-001", "loc-a", "3", "5"),
			stockRow("prod-2", "SKU-002", "loc-a", "10", "5"),
			stockRow("prod-3", "SKU-003", "loc-b", "5", "5"),
		},
		costs: map[string]decimal.Decimal{
			"prod-1": decQty("2.50"),
			"prod-2": decQty("10"),
			"prod-3": decQty("0.40"),
		},
	}
	return usecase.NewReportUseCase(repo), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestReportLowStock_ProductoBajoElMinimoAparece(t *testing.T) {
	uc, _ := buildReportUC()

	out, err := uc.LowStock(context.Background(), repository.StockFilter{}, 20, 0)
	require.NoError(t, err)

	// prod-1 (3 de 5) y prod-3 (justo en el mínimo) reportan; prod-2 no.
	require.Len(t, out.Items, 2)
	assert.Equal(t, "SKU-001", out.Items[0].SKU)
	assert.True(t, out.Items[0].Quantity.Equal(decQty("3")))
	assert.True(t, out.Items[0].MinStock.Equal(decQty("5")))
	assert.Equal(t, "SKU-003", out.Items[1].SKU, "cantidad igual al mínimo también es stock bajo")
}

func TestReportTotalValue_ValoraAlCosto(t *testing.T) {
	uc, _ := buildReportUC()

	out, err := uc.TotalValue(context.Background())
	require.NoError(t, err)

	// 3×2.50 + 10×10 + 5×0.40 = 109.50: siempre unit_cost, nunca precio de venta.
	assert.True(t, out.TotalValue.Equal(decQty("109.50")), "total = %s", out.TotalValue)
}

func TestReportStockLevels_PropagaFiltroYPaginacion(t *testing.T) {
	uc, repo := buildReportUC()

	filter := repository.StockFilter{ProductID: "prod-1", CategoryID: "cat-9"}
	out, err := uc.StockLevels(context.Background(), filter, 5, 10)
	require.NoError(t, err)

	assert.Equal(t, filter, repo.lastFilter)
	assert.Equal(t, 5, repo.lastLimit)
	assert.Equal(t, 10, repo.lastOffset)
	assert.Equal(t, 5, out.Page.Limit, "la página de la respuesta refleja lo pedido")
	assert.Equal(t, 10, out.Page.Offset)
}

func TestReportStockLevels_LecturasRepetidasDevuelvenLoMismo(t *testing.T) {
	uc, repo := buildReportUC()
	ctx := context.Background()

	first, err := uc.StockLevels(ctx, repository.StockFilter{}, 20, 0)
	require.NoError(t, err)
	second, err := uc.StockLevels(ctx, repository.StockFilter{}, 20, 0)
	require.NoError(t, err)

	// Los reportes no mutan el estado: mismas filas en ambas lecturas.
	assert.Equal(t, first.Items, second.Items)
	assert.Len(t, repo.rows, 3)
}
