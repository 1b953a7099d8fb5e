package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, name, address, parent_id, storage_capacity, is_active, created_at, updated_at`

// Create persiste una nueva ubicación.
func (r *LocationRepo) Create(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		location.ID, location.Name, location.Address, nullableString(location.ParentID),
		location.StorageCapacity, location.IsActive, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	l, err := scanLocation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// Update actualiza una ubicación.
func (r *LocationRepo) Update(ctx context.Context, location *entity.Location) error {
	query := `
		UPDATE locations
		SET name = $2, address = $3, parent_id = $4, storage_capacity = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		location.ID, location.Name, location.Address, nullableString(location.ParentID),
		location.StorageCapacity, location.IsActive, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List lista ubicaciones con paginación.
func (r *LocationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Deactivate marca la ubicación como inactiva (borrado suave).
func (r *LocationRepo) Deactivate(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE locations SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate location: %w", err)
	}
	return nil
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	var address, parentID *string
	if err := row.Scan(
		&l.ID, &l.Name, &address, &parentID, &l.StorageCapacity,
		&l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if address != nil {
		l.Address = *address
	}
	if parentID != nil {
		l.ParentID = *parentID
	}
	return &l, nil
}
