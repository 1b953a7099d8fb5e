package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log de movimientos sobre PostgreSQL
// (usable con pool o tx). Las filas nunca se actualizan ni se borran después
// del commit; SetPeer solo completa el enlace dentro de la misma transacción
// que creó ambos movimientos.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y rellena movement.ID con el BIGSERIAL
// asignado (monótono por commit; desempata el orden dentro de un mismo instante).
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, location_id, quantity, kind, actor_id, reference, note, peer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	reference := nullableString(movement.Reference)
	note := nullableString(movement.Note)
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.LocationID, movement.Quantity, movement.Kind,
		movement.ActorID, reference, note, movement.PeerID, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// SetPeer enlaza el movimiento con su gemelo de traslado.
func (r *MovementRepo) SetPeer(ctx context.Context, id, peerID int64) error {
	_, err := r.q.Exec(ctx, `UPDATE movements SET peer_id = $2 WHERE id = $1`, id, peerID)
	if err != nil {
		return fmt.Errorf("set movement peer: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	query := `
		SELECT id, product_id, location_id, quantity, kind, actor_id, reference, note, peer_id, created_at
		FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos con filtros; orden created_at DESC, id DESC para
// que la paginación sea estable ante empates de timestamp.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, location_id, quantity, kind, actor_id, reference, note, peer_id, created_at
		FROM movements WHERE 1=1`
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
	if f.LocationID != "" {
		add("location_id = $%d", f.LocationID)
	}
	if f.ActorID != "" {
		add("actor_id = $%d", f.ActorID)
	}
	if f.Kind != "" {
		add("kind = $%d", f.Kind)
	}
	if f.Reference != "" {
		add("reference = $%d", f.Reference)
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
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var reference, note *string
	if err := row.Scan(
		&m.ID, &m.ProductID, &m.LocationID, &m.Quantity, &m.Kind,
		&m.ActorID, &reference, &note, &m.PeerID, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	if reference != nil {
		m.Reference = *reference
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
