package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre el índice de stock. Leen el
// último snapshot comprometido; no toman locks de escritura.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const stockLevelSelect = `
	SELECT s.product_id, p.sku, p.name, s.location_id, l.name, s.quantity, p.min_stock, s.updated_at
	FROM stock_entries s
	JOIN products p ON p.id = s.product_id
	JOIN locations l ON l.id = s.location_id
	WHERE 1=1`

// ListStock lista niveles de stock con atributos de producto y ubicación
// resueltos, ordenados por SKU y ubicación.
func (r *ReportRepo) ListStock(ctx context.Context, f repository.StockFilter, limit, offset int) ([]repository.StockLevelResult, error) {
	return r.listLevels(ctx, stockLevelSelect, f, limit, offset)
}

// ListLowStock lista el subconjunto con quantity <= min_stock del producto.
func (r *ReportRepo) ListLowStock(ctx context.Context, f repository.StockFilter, limit, offset int) ([]repository.StockLevelResult, error) {
	return r.listLevels(ctx, stockLevelSelect+" AND s.quantity <= p.min_stock", f, limit, offset)
}

func (r *ReportRepo) listLevels(ctx context.Context, base string, f repository.StockFilter, limit, offset int) ([]repository.StockLevelResult, error) {
	query := base
	var args []any
	pos := 1
	add := func(cond string, val any) {
		query += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, val)
		pos++
	}
	if f.ProductID != "" {
		add("s.product_id = $%d", f.ProductID)
	}
	if f.LocationID != "" {
		add("s.location_id = $%d", f.LocationID)
	}
	if f.CategoryID != "" {
		add("p.category_id = $%d", f.CategoryID)
	}
	if f.SupplierID != "" {
		add("p.supplier_id = $%d", f.SupplierID)
	}
	query += fmt.Sprintf(" ORDER BY p.sku, l.name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []repository.StockLevelResult
	for rows.Next() {
		var res repository.StockLevelResult
		if err := rows.Scan(
			&res.ProductID, &res.SKU, &res.ProductName, &res.LocationID,
			&res.LocationName, &res.Quantity, &res.MinStock, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// TotalValue devuelve la suma de quantity × unit_cost sobre todo el stock.
// Se valora al costo de adquisición, no al precio de venta.
func (r *ReportRepo) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(s.quantity * p.unit_cost), 0)
		FROM stock_entries s
		JOIN products p ON p.id = s.product_id`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("total stock value: %w", err)
	}
	return total, nil
}
