package inventory_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stocktrackhq/stocktrack-api/internal/application/inventory"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(it *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it.Barcode != nil {
		for _, ex := range r.items {
			if ex.Barcode != nil && *ex.Barcode == *it.Barcode {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByIDAndCompany(id, companyID string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok || it.CompanyID != companyID {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

// GetByIDAndCompanyForUpdate no bloquea nada: las transacciones del fake se
// serializan en el runner.
func (r *fakeItemRepo) GetByIDAndCompanyForUpdate(id, companyID string) (*entity.Item, error) {
	return r.GetByIDAndCompany(id, companyID)
}

func (r *fakeItemRepo) GetByBarcodeAndCompany(barcode, companyID string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.CompanyID == companyID && it.Barcode != nil && *it.Barcode == barcode {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) BarcodeInUse(barcode string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Barcode != nil && *it.Barcode == barcode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeItemRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Item
	for _, it := range r.items {
		if it.CompanyID == companyID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, limit, offset), nil
}

func (r *fakeItemRepo) Update(it *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; ok {
		cp := *it
		r.items[it.ID] = &cp
	}
	return nil
}

func (r *fakeItemRepo) Delete(id, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it, ok := r.items[id]; ok && it.CompanyID == companyID {
		delete(r.items, id)
	}
	return nil
}

func (r *fakeItemRepo) DeleteByCompany(companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, it := range r.items {
		if it.CompanyID == companyID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeItemRepo) snapshot() map[string]entity.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := make(map[string]entity.Item, len(r.items))
	for id, it := range r.items {
		s[id] = *it
	}
	return s
}

func (r *fakeItemRepo) restore(s map[string]entity.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]*entity.Item, len(s))
	for id, it := range s {
		cp := it
		r.items[id] = &cp
	}
}

type fakeActivityRepo struct {
	mu   sync.Mutex
	rows []*entity.Activity
}

func newFakeActivityRepo() *fakeActivityRepo { return &fakeActivityRepo{} }

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeActivityRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Activity
	// Inserción más reciente primero, como el ORDER BY created_at DESC real.
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].CompanyID == companyID {
			cp := *r.rows[i]
			out = append(out, &cp)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeActivityRepo) ListByItem(itemID, companyID string, limit, offset int) ([]*entity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Activity
	for i := len(r.rows) - 1; i >= 0; i-- {
		a := r.rows[i]
		if a.CompanyID == companyID && a.ItemID != nil && *a.ItemID == itemID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeActivityRepo) ReassignUser(fromUserID, toUserID, companyID, suffix string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if a.CompanyID == companyID && a.UserID == fromUserID {
			a.UserID = toUserID
			a.UserName += suffix
		}
	}
	return nil
}

func (r *fakeActivityRepo) DeleteByCompany(companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, a := range r.rows {
		if a.CompanyID != companyID {
			kept = append(kept, a)
		}
	}
	r.rows = kept
	return nil
}

func (r *fakeActivityRepo) snapshot() []entity.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := make([]entity.Activity, len(r.rows))
	for i, a := range r.rows {
		s[i] = *a
	}
	return s
}

func (r *fakeActivityRepo) restore(s []entity.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make([]*entity.Activity, len(s))
	for i := range s {
		cp := s[i]
		r.rows[i] = &cp
	}
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDAndCompany(id, companyID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.CompanyID != companyID {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountActiveByCompany(companyID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, u := range r.users {
		if u.CompanyID == companyID && u.Active {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		cp := *u
		r.users[u.ID] = &cp
	}
	return nil
}

func (r *fakeUserRepo) Delete(id, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok && u.CompanyID == companyID {
		delete(r.users, id)
	}
	return nil
}

func (r *fakeUserRepo) DeleteByCompany(companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.CompanyID == companyID {
			delete(r.users, id)
		}
	}
	return nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[c.ID]; ok {
		cp := *c
		r.companies[c.ID] = &cp
	}
	return nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.companies, id)
	return nil
}

// fakeTxRunner emula la transacción: serializa las ejecuciones y, si fn
// falla, restaura el snapshot de ambos fakes (rollback).
type fakeTxRunner struct {
	mu    sync.Mutex
	items *fakeItemRepo
	acts  *fakeActivityRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	itemsSnap := f.items.snapshot()
	actsSnap := f.acts.snapshot()
	if err := fn(f.items, f.acts); err != nil {
		f.items.restore(itemsSnap)
		f.acts.restore(actsSnap)
		return err
	}
	return nil
}

func paginate[T any](in []*T, limit, offset int) []*T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type inventoryFixture struct {
	items     *fakeItemRepo
	acts      *fakeActivityRepo
	users     *fakeUserRepo
	companies *fakeCompanyRepo
	itemUC    *inventory.ItemUseCase
	batchUC   *inventory.BatchAdjustUseCase
	feedUC    *inventory.ActivityFeedUseCase
	companyID string
	userID    string
}

// newInventoryFixture arma una company "Acme Tools" con la admin Ana y los
// casos de uso cableados sobre fakes.
func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()
	items := newFakeItemRepo()
	acts := newFakeActivityRepo()
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	runner := &fakeTxRunner{items: items, acts: acts}

	now := time.Now().UTC()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      "Acme Tools",
		Code:      "ACM001",
		Tier:      entity.TierFree,
		MaxUsers:  5,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, companies.Create(company))

	admin := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Email:     "ana@acme.test",
		Name:      "Ana",
		Role:      entity.RoleAdmin,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, users.Create(admin))

	return &inventoryFixture{
		items:     items,
		acts:      acts,
		users:     users,
		companies: companies,
		itemUC:    inventory.NewItemUseCase(runner, items, users, companies),
		batchUC:   inventory.NewBatchAdjustUseCase(runner, users),
		feedUC:    inventory.NewActivityFeedUseCase(acts, items),
		companyID: company.ID,
		userID:    admin.ID,
	}
}

// seedItem inserta un ítem directo en el fake, sin pasar por el caso de uso
// (no genera actividad).
func (f *inventoryFixture) seedItem(t *testing.T, name string, qty int, barcode *string, threshold *int) *entity.Item {
	t.Helper()
	now := time.Now().UTC()
	it := &entity.Item{
		ID:                uuid.New().String(),
		CompanyID:         f.companyID,
		Name:              name,
		Quantity:          qty,
		Barcode:           barcode,
		LowStockThreshold: threshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, f.items.Create(it))
	return it
}

// setDefaultThreshold fija el umbral por defecto de la company del fixture.
func (f *inventoryFixture) setDefaultThreshold(t *testing.T, threshold *int) {
	t.Helper()
	company, err := f.companies.GetByID(f.companyID)
	require.NoError(t, err)
	company.DefaultLowStockThreshold = threshold
	require.NoError(t, f.companies.Update(company))
}

// lastActivity devuelve la entrada de auditoría más reciente de la company.
func (f *inventoryFixture) lastActivity(t *testing.T) *entity.Activity {
	t.Helper()
	rows, err := f.acts.ListByCompany(f.companyID, 1, 0)
	require.NoError(t, err)
	require.NotEmpty(t, rows, "se esperaba al menos una actividad registrada")
	return rows[0]
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
