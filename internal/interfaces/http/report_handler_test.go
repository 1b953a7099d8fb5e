package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcardenas/Almacen-api/internal/application/dto"
	"github.com/jcardenas/Almacen-api/internal/application/usecase"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
	apphttp "github.com/jcardenas/Almacen-api/internal/interfaces/http"
)

// rptRepo fake del puerto ReportRepository: devuelve filas fijas y registra
// los argumentos con que se le llamó.
type rptRepo struct {
	rows       []repository.StockLevelResult
	total      decimal.Decimal
	lastFilter repository.StockFilter
	lastLimit  int
	lastOffset int
}

func (r *rptRepo) ListStock(_ context.Context, f repository.StockFilter, limit, offset int) ([]repository.StockLevelResult, error) {
	r.lastFilter, r.lastLimit, r.lastOffset = f, limit, offset
	return r.rows, nil
}

func (r *rptRepo) ListLowStock(_ context.Context, f repository.StockFilter, limit, offset int) ([]repository.StockLevelResult, error) {
	r.lastFilter, r.lastLimit, r.lastOffset = f, limit, offset
	var low []repository.StockLevelResult
	for _, row := range r.rows {
		if row.Quantity.LessThanOrEqual(row.MinStock) {
			low = append(low, row)
		}
	}
	return low, nil
}

func (r *rptRepo) TotalValue(_ context.Context) (decimal.Decimal, error) {
	return r.total, nil
}

// buildReportApp arma la app Fiber con las rutas de reportes protegidas como
// en el router real.
func buildReportApp(t *testing.T) (*fiber.App, *rptRepo) {
	t.Helper()
	d := func(s string) decimal.Decimal {
		v, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return v
	}
	repo := &rptRepo{
		rows: []repository.StockLevelResult{
			{
				ProductID: "prod-1", SKU: "SKU-001", ProductName: "Tornillo",
				LocationID: "loc-a", LocationName: "Central",
				Quantity: d("3"), MinStock: d("5"), UpdatedAt: time.Now().UTC(),
			},
			{
				ProductID: "prod-2", SKU: "SKU-002", ProductName: "Tuerca",
				LocationID: "loc-a", LocationName: "Central",
				Quantity: d("40"), MinStock: d("5"), UpdatedAt: time.Now().UTC(),
			},
		},
		total: d("47.50"),
	}

	app := fiber.New()
	handler := apphttp.NewReportHandler(usecase.NewReportUseCase(repo))
	grp := app.Group("/api/reports", apphttp.AuthMiddleware(testJWTSecret))
	grp.Get("/stock-levels", handler.StockLevels)
	grp.Get("/low-stock", handler.LowStock)
	grp.Get("/total-value", handler.TotalValue)
	return app, repo
}

func getReport(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, "vendedor"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestReportLowStock_DevuelveSoloFilasBajoElMinimo(t *testing.T) {
	app, _ := buildReportApp(t)

	resp := getReport(t, app, "/api/reports/low-stock")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.StockLevelListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1, "solo SKU-001 está con 3 de un mínimo de 5")
	row := out.Items[0]
	assert.Equal(t, "SKU-001", row.SKU)
	assert.Equal(t, "Tornillo", row.ProductName)
	assert.Equal(t, "Central", row.LocationName)
	assert.True(t, row.Quantity.Equal(decimal.NewFromInt(3)))
	assert.True(t, row.MinStock.Equal(decimal.NewFromInt(5)))
}

func TestReportStockLevels_PasaFiltroYPaginacionAlRepositorio(t *testing.T) {
	app, repo := buildReportApp(t)

	resp := getReport(t, app,
		"/api/reports/stock-levels?product_id=prod-1&category_id=cat-9&limit=5&offset=10")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "prod-1", repo.lastFilter.ProductID)
	assert.Equal(t, "cat-9", repo.lastFilter.CategoryID)
	assert.Equal(t, 5, repo.lastLimit)
	assert.Equal(t, 10, repo.lastOffset)

	var out dto.StockLevelListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 5, out.Page.Limit)
	assert.Equal(t, 10, out.Page.Offset)
}

func TestReportTotalValue_DevuelveLaSumaACosto(t *testing.T) {
	app, _ := buildReportApp(t)

	resp := getReport(t, app, "/api/reports/total-value")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TotalValueResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("47.50")))
}

func TestReportStockLevels_SinTokenDevuelve401(t *testing.T) {
	app, _ := buildReportApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/stock-levels", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
