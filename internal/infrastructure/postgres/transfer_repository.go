package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL
// (usable con pool o tx). Las cabeceras son inmutables.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la cabecera del traslado y rellena transfer.ID.
func (r *TransferRepo) Create(ctx context.Context, transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (product_id, from_location_id, to_location_id, quantity, actor_id, note, out_movement_id, in_movement_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	note := nullableString(transfer.Note)
	err := r.q.QueryRow(ctx, query,
		transfer.ProductID, transfer.FromLocationID, transfer.ToLocationID,
		transfer.Quantity, transfer.ActorID, note,
		transfer.OutMovementID, transfer.InMovementID, transfer.CreatedAt,
	).Scan(&transfer.ID)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID; nil si no existe.
func (r *TransferRepo) GetByID(ctx context.Context, id int64) (*entity.Transfer, error) {
	query := `
		SELECT id, product_id, from_location_id, to_location_id, quantity, actor_id, note, out_movement_id, in_movement_id, created_at
		FROM transfers WHERE id = $1`
	t, err := scanTransfer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

// List lista traslados con filtros y paginación (created_at DESC, id DESC).
func (r *TransferRepo) List(ctx context.Context, f repository.TransferFilter, limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, product_id, from_location_id, to_location_id, quantity, actor_id, note, out_movement_id, in_movement_id, created_at
		FROM transfers WHERE 1=1`
	var args []any
	pos := 1
	add := func(cond string, val any) {
		query += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, val)
		pos++
	}
	if f.ProductID != "" {
		add("product_id = $%d", f.ProductID)
	}
	if f.FromLocationID != "" {
		add("from_location_id = $%d", f.FromLocationID)
	}
	if f.ToLocationID != "" {
		add("to_location_id = $%d", f.ToLocationID)
	}
	if f.ActorID != "" {
		add("actor_id = $%d", f.ActorID)
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at <= $%d", *f.To)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	var note *string
	if err := row.Scan(
		&t.ID, &t.ProductID, &t.FromLocationID, &t.ToLocationID,
		&t.Quantity, &t.ActorID, &note, &t.OutMovementID, &t.InMovementID, &t.CreatedAt,
	); err != nil {
		return nil, err
	}
	if note != nil {
		t.Note = *note
	}
	return &t, nil
}
