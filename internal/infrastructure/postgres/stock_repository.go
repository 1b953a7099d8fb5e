package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una ubicación.
// Si no hay fila devuelve una entrada con cantidad 0.
func (r *StockRepo) Get(ctx context.Context, productID, locationID string) (*entity.StockEntry, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_entries WHERE product_id = $1 AND location_id = $2`
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// LockOrCreate bloquea la fila de stock (SELECT FOR UPDATE), creándola con
// cantidad 0 si falta. El INSERT ... ON CONFLICT DO NOTHING previo hace el
// upsert seguro ante dos transacciones creando la misma fila a la vez.
func (r *StockRepo) LockOrCreate(ctx context.Context, productID, locationID string) (*entity.StockEntry, error) {
	insert := `
		INSERT INTO stock_entries (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, location_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, insert, productID, locationID); err != nil {
		return nil, fmt.Errorf("create stock entry: %w", err)
	}
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_entries WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("lock stock entry: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y ubicación).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.LocationID, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
