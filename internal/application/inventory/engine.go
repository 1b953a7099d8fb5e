package inventory

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
	"github.com/jcardenas/Almacen-api/pkg/metrics"
)

// Presupuesto de reintentos ante fallos de serialización y backoff con jitter.
const (
	maxAttempts    = 3
	backoffMinMs   = 10
	backoffRangeMs = 40
)

// Policy política del motor frente a entidades inactivas.
type Policy struct {
	// BlockInactive rechaza con ErrInvalidInput movimientos sobre productos
	// o ubicaciones inactivas. Las entidades inactivas siguen existiendo.
	BlockInactive bool
}

// Engine es el motor transaccional de mutación de inventario: único escritor
// de movements, stock_entries y transfers. Consulta el catálogo pero nunca
// lo muta.
type Engine struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	policy       Policy
	metrics      *metrics.Inventory
}

// NewEngine construye el motor. metrics puede ser nil.
func NewEngine(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	policy Policy,
	m *metrics.Inventory,
) *Engine {
	return &Engine{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		policy:       policy,
		metrics:      m,
	}
}

// RecordMovementInput entrada para registrar un movimiento simple.
// Quantity es magnitud para incoming/outgoing y valor firmado para adjust.
type RecordMovementInput struct {
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	Kind       string
	ActorID    string
	Reference  string
	Note       string
}

// RecordTransferInput entrada para registrar un traslado entre ubicaciones.
type RecordTransferInput struct {
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal
	ActorID        string
	Note           string
}

// RecordMovement registra un movimiento (incoming, outgoing o adjust) de forma
// atómica: bloquea la fila de stock (SELECT FOR UPDATE, creándola si falta),
// re-verifica suficiencia contra la cantidad bloqueada, inserta el movimiento
// con la cantidad canonizada y actualiza el stock en la misma transacción.
func (e *Engine) RecordMovement(ctx context.Context, in RecordMovementInput) (*entity.Movement, error) {
	if in.ProductID == "" || in.LocationID == "" || in.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRequestKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	// Canoniza y valida la regla de signo/cero antes de tocar la BD
	delta, err := entity.SignedQuantity(in.Kind, in.Quantity)
	if err != nil {
		e.metrics.MovementObserved(in.Kind, "rejected")
		return nil, err
	}

	if err := e.checkProductAndLocation(ctx, in.ProductID, in.LocationID); err != nil {
		e.metrics.MovementObserved(in.Kind, "rejected")
		return nil, err
	}
	if err := e.checkActor(ctx, in.ActorID); err != nil {
		e.metrics.MovementObserved(in.Kind, "rejected")
		return nil, err
	}

	var movement *entity.Movement
	err = e.withRetry(ctx, func() error {
		return e.txRunner.Run(ctx, func(
			movRepo repository.MovementRepository,
			stockRepo repository.StockRepository,
			_ repository.TransferRepository,
		) error {
			stock, err := stockRepo.LockOrCreate(ctx, in.ProductID, in.LocationID)
			if err != nil {
				return err
			}
			newQty := stock.Quantity.Add(delta)
			if newQty.IsNegative() {
				return domain.ErrInsufficientStock
			}
			now := time.Now().UTC()
			mov := &entity.Movement{
				ProductID:  in.ProductID,
				LocationID: in.LocationID,
				Quantity:   delta,
				Kind:       in.Kind,
				ActorID:    in.ActorID,
				Reference:  in.Reference,
				Note:       in.Note,
				CreatedAt:  now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
			stock.Quantity = newQty
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(ctx, stock); err != nil {
				return err
			}
			movement = mov
			return nil
		})
	})
	if err != nil {
		e.metrics.MovementObserved(in.Kind, outcomeLabel(err))
		return nil, err
	}
	e.metrics.MovementObserved(in.Kind, "ok")
	return movement, nil
}

// RecordTransfer registra un traslado como unidad atómica: dos movimientos
// gemelos enlazados (transfer_out en origen, transfer_in en destino), los dos
// deltas de stock y la cabecera, todo en una sola transacción.
//
// Para evitar deadlocks con traslados cruzados del mismo producto, los locks
// de stock se toman en orden canónico ascendente de (product_id, location_id)
// y los roles origen/destino se recuperan después de tener ambos locks.
func (e *Engine) RecordTransfer(ctx context.Context, in RecordTransferInput) (*entity.Transfer, error) {
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" || in.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID {
		e.metrics.TransferObserved("rejected")
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		e.metrics.TransferObserved("rejected")
		return nil, domain.ErrInvalidInput
	}

	if err := e.checkProductAndLocation(ctx, in.ProductID, in.FromLocationID); err != nil {
		e.metrics.TransferObserved("rejected")
		return nil, err
	}
	if err := e.checkLocation(ctx, in.ToLocationID); err != nil {
		e.metrics.TransferObserved("rejected")
		return nil, err
	}
	if err := e.checkActor(ctx, in.ActorID); err != nil {
		e.metrics.TransferObserved("rejected")
		return nil, err
	}

	var transfer *entity.Transfer
	err := e.withRetry(ctx, func() error {
		return e.txRunner.Run(ctx, func(
			movRepo repository.MovementRepository,
			stockRepo repository.StockRepository,
			transferRepo repository.TransferRepository,
		) error {
			// Orden canónico de locks; mismo producto, decide el id de ubicación
			firstLoc, secondLoc := in.FromLocationID, in.ToLocationID
			if secondLoc < firstLoc {
				firstLoc, secondLoc = secondLoc, firstLoc
			}
			first, err := stockRepo.LockOrCreate(ctx, in.ProductID, firstLoc)
			if err != nil {
				return err
			}
			second, err := stockRepo.LockOrCreate(ctx, in.ProductID, secondLoc)
			if err != nil {
				return err
			}
			// Con ambos locks en mano, recupera los roles semánticos
			source, dest := first, second
			if source.LocationID != in.FromLocationID {
				source, dest = second, first
			}
			if source.Quantity.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}

			now := time.Now().UTC()
			outMov := &entity.Movement{
				ProductID:  in.ProductID,
				LocationID: in.FromLocationID,
				Quantity:   in.Quantity.Neg(),
				Kind:       entity.MovementKindTransferOut,
				ActorID:    in.ActorID,
				Note:       in.Note,
				CreatedAt:  now,
			}
			if err := movRepo.Create(ctx, outMov); err != nil {
				return err
			}
			inMov := &entity.Movement{
				ProductID:  in.ProductID,
				LocationID: in.ToLocationID,
				Quantity:   in.Quantity,
				Kind:       entity.MovementKindTransferIn,
				ActorID:    in.ActorID,
				Note:       in.Note,
				PeerID:     &outMov.ID,
				CreatedAt:  now,
			}
			if err := movRepo.Create(ctx, inMov); err != nil {
				return err
			}
			// Enlace mutuo: el out ya existía cuando nació el in
			if err := movRepo.SetPeer(ctx, outMov.ID, inMov.ID); err != nil {
				return err
			}
			outMov.PeerID = &inMov.ID

			source.Quantity = source.Quantity.Sub(in.Quantity)
			source.UpdatedAt = now
			if err := stockRepo.Upsert(ctx, source); err != nil {
				return err
			}
			dest.Quantity = dest.Quantity.Add(in.Quantity)
			dest.UpdatedAt = now
			if err := stockRepo.Upsert(ctx, dest); err != nil {
				return err
			}

			tr := &entity.Transfer{
				ProductID:      in.ProductID,
				FromLocationID: in.FromLocationID,
				ToLocationID:   in.ToLocationID,
				Quantity:       in.Quantity,
				ActorID:        in.ActorID,
				Note:           in.Note,
				OutMovementID:  outMov.ID,
				InMovementID:   inMov.ID,
				CreatedAt:      now,
			}
			if err := transferRepo.Create(ctx, tr); err != nil {
				return err
			}
			transfer = tr
			return nil
		})
	})
	if err != nil {
		e.metrics.TransferObserved(outcomeLabel(err))
		return nil, err
	}
	e.metrics.TransferObserved("ok")
	return transfer, nil
}

// withRetry ejecuta fn y la reintenta ante domain.ErrSerialization hasta
// maxAttempts veces con backoff corto con jitter. Agotado el presupuesto
// devuelve domain.ErrConflict. Respeta el deadline del contexto.
func (e *Engine) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, domain.ErrSerialization) {
			e.metrics.RetriesObserved(attempt)
			return err
		}
		if attempt == maxAttempts-1 {
			// Último intento fallido: no hay backoff que esperar.
			break
		}
		backoff := time.Duration(backoffMinMs+rand.Intn(backoffRangeMs)) * time.Millisecond
		select {
		case <-ctx.Done():
			e.metrics.RetriesObserved(attempt)
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	e.metrics.RetriesObserved(maxAttempts)
	return domain.ErrConflict
}

// checkProductAndLocation verifica existencia (y política de inactivos) de
// producto y ubicación.
func (e *Engine) checkProductAndLocation(ctx context.Context, productID, locationID string) error {
	product, err := e.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if e.policy.BlockInactive && !product.IsActive {
		return domain.ErrInvalidInput
	}
	return e.checkLocation(ctx, locationID)
}

func (e *Engine) checkLocation(ctx context.Context, locationID string) error {
	location, err := e.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	if e.policy.BlockInactive && !location.IsActive {
		return domain.ErrInvalidInput
	}
	return nil
}

func (e *Engine) checkActor(ctx context.Context, actorID string) error {
	actor, err := e.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return domain.ErrNotFound
	}
	return nil
}

// outcomeLabel etiqueta de métrica según el error del motor.
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNotFound):
		return "rejected"
	default:
		return "error"
	}
}
