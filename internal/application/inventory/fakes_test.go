package inventory_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcardenas/Almacen-api/internal/domain"
	"github.com/jcardenas/Almacen-api/internal/domain/entity"
	"github.com/jcardenas/Almacen-api/internal/domain/repository"
)

// memStore estado compartido en memoria para los fakes del motor. El fake
// de TxRunner toma un snapshot antes de ejecutar fn y lo restaura si fn
// falla, emulando el rollback de la transacción real.
type memStore struct {
	mu        sync.Mutex
	movements []*entity.Movement
	stocks    map[string]*entity.StockEntry
	transfers []*entity.Transfer
	nextMovID int64
	nextTrID  int64

	// lockOrder registra el orden en que se pidieron los locks de stock
	// (claves producto|ubicación) dentro de la última transacción.
	lockOrder []string

	// serializationFailures fallos de serialización pendientes de inyectar
	// antes de dejar pasar una transacción. onSerializationFailure se invoca
	// tras cada inyección con los fallos restantes.
	serializationFailures  int
	onSerializationFailure func(remaining int)

	// failTransferCreate fuerza un error no reintentable al crear la cabecera.
	failTransferCreate error
}

func newMemStore() *memStore {
	return &memStore{stocks: make(map[string]*entity.StockEntry)}
}

func stockKey(productID, locationID string) string {
	return productID + "|" + locationID
}

func (s *memStore) snapshot() ([]*entity.Movement, map[string]*entity.StockEntry, []*entity.Transfer, int64, int64) {
	movs := make([]*entity.Movement, len(s.movements))
	for i, m := range s.movements {
		cp := *m
		movs[i] = &cp
	}
	stocks := make(map[string]*entity.StockEntry, len(s.stocks))
	for k, st := range s.stocks {
		cp := *st
		stocks[k] = &cp
	}
	trs := make([]*entity.Transfer, len(s.transfers))
	for i, tr := range s.transfers {
		cp := *tr
		trs[i] = &cp
	}
	return movs, stocks, trs, s.nextMovID, s.nextTrID
}

// stockQuantity devuelve la cantidad actual comprometida para un par.
func (s *memStore) stockQuantity(productID, locationID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stocks[stockKey(productID, locationID)]; ok {
		return st.Quantity
	}
	return decimal.Zero
}

// sumMovements deriva la cantidad desde el log, para verificar que el índice
// de stock coincide siempre con la suma de movimientos comprometidos.
func (s *memStore) sumMovements(productID, locationID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, m := range s.movements {
		if m.ProductID == productID && m.LocationID == locationID {
			total = total.Add(m.Quantity)
		}
	}
	return total
}

// ── TxRunner fake ────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	transferRepo repository.TransferRepository,
) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.serializationFailures > 0 {
		s.serializationFailures--
		if s.onSerializationFailure != nil {
			s.onSerializationFailure(s.serializationFailures)
		}
		return fmt.Errorf("%w: restart transaction", domain.ErrSerialization)
	}

	movs, stocks, trs, nextMov, nextTr := s.snapshot()
	s.lockOrder = nil
	err := fn(&fakeMovementRepo{s: s}, &fakeStockRepo{s: s}, &fakeTransferRepo{s: s})
	if err != nil {
		s.movements, s.stocks, s.transfers = movs, stocks, trs
		s.nextMovID, s.nextTrID = nextMov, nextTr
		return err
	}
	return nil
}

// ── Repos fake atados al store (siempre dentro de la "tx") ───────────────────

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.nextMovID++
	m.ID = r.s.nextMovID
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) SetPeer(_ context.Context, id, peerID int64) error {
	for _, m := range r.s.movements {
		if m.ID == id {
			p := peerID
			m.PeerID = &p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(_ context.Context, f repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.LocationID != "" && m.LocationID != f.LocationID {
			continue
		}
		if f.Kind != "" && m.Kind != f.Kind {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) Get(_ context.Context, productID, locationID string) (*entity.StockEntry, error) {
	if st, ok := r.s.stocks[stockKey(productID, locationID)]; ok {
		cp := *st
		return &cp, nil
	}
	return &entity.StockEntry{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
}

func (r *fakeStockRepo) LockOrCreate(ctx context.Context, productID, locationID string) (*entity.StockEntry, error) {
	r.s.lockOrder = append(r.s.lockOrder, stockKey(productID, locationID))
	key := stockKey(productID, locationID)
	if _, ok := r.s.stocks[key]; !ok {
		r.s.stocks[key] = &entity.StockEntry{
			ProductID:  productID,
			LocationID: locationID,
			Quantity:   decimal.Zero,
			UpdatedAt:  time.Now().UTC(),
		}
	}
	cp := *r.s.stocks[key]
	return &cp, nil
}

func (r *fakeStockRepo) Upsert(_ context.Context, stock *entity.StockEntry) error {
	cp := *stock
	r.s.stocks[stockKey(stock.ProductID, stock.LocationID)] = &cp
	return nil
}

type fakeTransferRepo struct{ s *memStore }

func (r *fakeTransferRepo) Create(_ context.Context, tr *entity.Transfer) error {
	if r.s.failTransferCreate != nil {
		return r.s.failTransferCreate
	}
	r.s.nextTrID++
	tr.ID = r.s.nextTrID
	cp := *tr
	r.s.transfers = append(r.s.transfers, &cp)
	return nil
}

func (r *fakeTransferRepo) GetByID(_ context.Context, id int64) (*entity.Transfer, error) {
	for _, tr := range r.s.transfers {
		if tr.ID == id {
			cp := *tr
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTransferRepo) List(_ context.Context, f repository.TransferFilter, limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, tr := range r.s.transfers {
		if f.ProductID != "" && tr.ProductID != f.ProductID {
			continue
		}
		cp := *tr
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── Catálogo fake ────────────────────────────────────────────────────────────

type fakeCatalog struct {
	products  map[string]*entity.Product
	locations map[string]*entity.Location
	users     map[string]*entity.User
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products:  make(map[string]*entity.Product),
		locations: make(map[string]*entity.Location),
		users:     make(map[string]*entity.User),
	}
}

type fakeProductRepo struct{ c *fakeCatalog }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.c.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.c.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.c.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.c.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Deactivate(_ context.Context, id string) error {
	if p, ok := r.c.products[id]; ok {
		p.IsActive = false
		return nil
	}
	return domain.ErrNotFound
}

type fakeLocationRepo struct{ c *fakeCatalog }

func (r *fakeLocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.c.locations[l.ID] = l
	return nil
}
func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return r.c.locations[id], nil
}
func (r *fakeLocationRepo) Update(_ context.Context, l *entity.Location) error {
	r.c.locations[l.ID] = l
	return nil
}
func (r *fakeLocationRepo) List(_ context.Context, _, _ int) ([]*entity.Location, error) {
	return nil, nil
}
func (r *fakeLocationRepo) Deactivate(_ context.Context, id string) error {
	if l, ok := r.c.locations[id]; ok {
		l.IsActive = false
		return nil
	}
	return domain.ErrNotFound
}

type fakeUserRepo struct{ c *fakeCatalog }

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.c.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.c.users[id], nil
}
func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.c.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.c.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	return nil, nil
}
