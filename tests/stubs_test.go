package tests

// stubs_test.go — shared in-memory repository stubs. Unit tests run against
// these; the real GORM/Redis implementations are covered by tests/e2e.

import (
	"context"
	"errors"
	"sort"
	"time"

	"dukapos/internal/model"
	"dukapos/internal/repository"
	"dukapos/internal/session"

	"github.com/google/uuid"
)

var errNotFound = errors.New("not found")

// ── Product repo ─────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
	failOn   string // method name that should return an error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if r.failOn == "Create" {
		return errors.New("backend unavailable")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	if r.failOn == "List" {
		return nil, errors.New("backend unavailable")
	}
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Customer repo ────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── Supplier repo ────────────────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Transaction repo ─────────────────────────────────────────────────────────

// stubTransactionRepo mimics the two-step write: headers and items land in
// separate maps, and failItems makes the second step fail so tests can
// assert the orphan-header behavior.
type stubTransactionRepo struct {
	headers   map[uuid.UUID]*model.Transaction
	items     map[uuid.UUID][]model.TransactionItem
	failItems bool
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{
		headers: make(map[uuid.UUID]*model.Transaction),
		items:   make(map[uuid.UUID][]model.TransactionItem),
	}
}

func (r *stubTransactionRepo) CreateHeader(_ context.Context, t *model.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	header := *t
	header.Items = nil
	r.headers[t.ID] = &header
	return nil
}

func (r *stubTransactionRepo) CreateItems(_ context.Context, items []model.TransactionItem) error {
	if r.failItems {
		return errors.New("item insert failed")
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		r.items[items[i].TransactionID] = append(r.items[items[i].TransactionID], items[i])
	}
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	t, ok := r.headers[id]
	if !ok {
		return nil, errNotFound
	}
	full := *t
	full.Items = r.items[id]
	return &full, nil
}

func (r *stubTransactionRepo) List(_ context.Context, page, limit int) ([]model.Transaction, int64, error) {
	all := r.all()
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (r *stubTransactionRepo) ListBetween(_ context.Context, start, end time.Time) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range r.all() {
		if !t.CreatedAt.Before(start) && !t.CreatedAt.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) SumTotals(_ context.Context) (float64, error) {
	sum := 0.0
	for _, t := range r.headers {
		f, _ := t.TotalAmount.Float64()
		sum += f
	}
	return sum, nil
}

func (r *stubTransactionRepo) all() []model.Transaction {
	out := make([]model.Transaction, 0, len(r.headers))
	for id, t := range r.headers {
		full := *t
		full.Items = r.items[id]
		out = append(out, full)
	}
	return out
}

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

// ── Purchase order repo ──────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders map[string]*model.PurchaseOrder
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*model.PurchaseOrder)}
}

func (r *stubOrderRepo) Save(_ context.Context, order *model.PurchaseOrder) error {
	cp := *order
	r.orders[order.ID.String()] = &cp
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*model.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]model.PurchaseOrder, error) {
	out := make([]model.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

var _ repository.PurchaseOrderRepository = (*stubOrderRepo)(nil)

// ── User repo ────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*model.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok || !u.Active {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errNotFound
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Session store ────────────────────────────────────────────────────────────

type stubSessionStore struct {
	states map[string]*session.State
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{states: make(map[string]*session.State)}
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*session.State, error) {
	st, ok := s.states[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	cp := *st
	cp.History = append([]session.Screen(nil), st.History...)
	return &cp, nil
}

func (s *stubSessionStore) Set(_ context.Context, id string, st *session.State) error {
	cp := *st
	cp.History = append([]session.Screen(nil), st.History...)
	s.states[id] = &cp
	return nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.states, id)
	return nil
}

var _ session.Store = (*stubSessionStore)(nil)
