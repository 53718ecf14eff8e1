package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stocktrackhq/stocktrack-api/internal/application/usecase"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

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
	return out, nil
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
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].CompanyID == companyID {
			cp := *r.rows[i]
			out = append(out, &cp)
		}
	}
	return out, nil
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
	return out, nil
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

func (r *fakeActivityRepo) byCompany(companyID string) []*entity.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Activity
	for _, a := range r.rows {
		if a.CompanyID == companyID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}

type fakeInviteRepo struct {
	mu      sync.Mutex
	invites map[string]*entity.Invite
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: make(map[string]*entity.Invite)}
}

func (r *fakeInviteRepo) Create(inv *entity.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	r.invites[inv.ID] = &cp
	return nil
}

func (r *fakeInviteRepo) GetByToken(token string) (*entity.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invites {
		if inv.Token == token {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Invite
	for _, inv := range r.invites {
		if inv.CompanyID == companyID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInviteRepo) MarkUsed(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invites[id]
	if !ok || inv.Used {
		return false, nil
	}
	inv.Used = true
	return true, nil
}

func (r *fakeInviteRepo) DeleteByCompany(companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, inv := range r.invites {
		if inv.CompanyID == companyID {
			delete(r.invites, id)
		}
	}
	return nil
}

type fakeStatsRepo struct {
	stats map[string]*repository.CompanyStats
}

func (r *fakeStatsRepo) GetCompanyStats(_ context.Context, companyID string) (*repository.CompanyStats, error) {
	if s, ok := r.stats[companyID]; ok {
		cp := *s
		return &cp, nil
	}
	return &repository.CompanyStats{}, nil
}

// fakeReassignRunner pasa los fakes como repos atados a la tx; los casos
// felices no necesitan rollback.
type fakeReassignRunner struct {
	users *fakeUserRepo
	acts  *fakeActivityRepo
}

func (f *fakeReassignRunner) RunReassign(_ context.Context, fn func(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	return fn(f.users, f.acts)
}

type fakePurgeRunner struct {
	companies *fakeCompanyRepo
	users     *fakeUserRepo
	items     *fakeItemRepo
	acts      *fakeActivityRepo
	invites   *fakeInviteRepo
}

func (f *fakePurgeRunner) RunPurge(_ context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	activityRepo repository.ActivityRepository,
	inviteRepo repository.InviteRepository,
) error) error {
	return fn(f.companies, f.users, f.items, f.acts, f.invites)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type adminFixture struct {
	users     *fakeUserRepo
	companies *fakeCompanyRepo
	items     *fakeItemRepo
	acts      *fakeActivityRepo
	invites   *fakeInviteRepo
	userUC    *usecase.UserUseCase
	companyUC *usecase.CompanyUseCase
	companyID string
	adminID   string
}

// newAdminFixture arma la company "Acme Tools" con la admin Ana y los casos
// de uso de administración cableados sobre fakes.
func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	items := newFakeItemRepo()
	acts := newFakeActivityRepo()
	invites := newFakeInviteRepo()

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

	reassign := &fakeReassignRunner{users: users, acts: acts}
	purge := &fakePurgeRunner{companies: companies, users: users, items: items, acts: acts, invites: invites}

	return &adminFixture{
		users:     users,
		companies: companies,
		items:     items,
		acts:      acts,
		invites:   invites,
		userUC:    usecase.NewUserUseCase(reassign, users),
		companyUC: usecase.NewCompanyUseCase(purge, companies, users),
		companyID: company.ID,
		adminID:   admin.ID,
	}
}

// seedMember agrega un usuario a la company del fixture.
func (f *adminFixture) seedMember(t *testing.T, name, email string, active bool) *entity.User {
	t.Helper()
	u := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: f.companyID,
		Email:     email,
		Name:      name,
		Role:      entity.RoleUser,
		Active:    active,
	}
	require.NoError(t, f.users.Create(u))
	return u
}

// seedActivity registra una actividad con autoría del usuario dado.
func (f *adminFixture) seedActivity(t *testing.T, user *entity.User, itemName string) *entity.Activity {
	t.Helper()
	itemID := uuid.New().String()
	a := &entity.Activity{
		ID:        uuid.New().String(),
		CompanyID: f.companyID,
		UserID:    user.ID,
		ItemID:    &itemID,
		Type:      entity.ActivityAdded,
		Quantity:  1,
		ItemName:  itemName,
		UserName:  user.Name,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.acts.Create(a))
	return a
}
