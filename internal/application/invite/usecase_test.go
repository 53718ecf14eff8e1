package invite_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrackhq/stocktrack-api/internal/application/auth"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/application/invite"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInviteRepo struct {
	mu      sync.Mutex
	invites map[string]*entity.Invite // por ID
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: make(map[string]*entity.Invite)}
}

func (r *fakeInviteRepo) Create(inv *entity.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.invites {
		if ex.Token == inv.Token {
			return domain.ErrDuplicate
		}
	}
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

// MarkUsed es el compare-and-swap: solo el primer llamador por invitación
// recibe true.
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

func (r *fakeInviteRepo) snapshot() map[string]entity.Invite {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := make(map[string]entity.Invite, len(r.invites))
	for id, inv := range r.invites {
		s[id] = *inv
	}
	return s
}

func (r *fakeInviteRepo) restore(s map[string]entity.Invite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invites = make(map[string]*entity.Invite, len(s))
	for id, inv := range s {
		cp := inv
		r.invites[id] = &cp
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

func (r *fakeUserRepo) snapshot() map[string]entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := make(map[string]entity.User, len(r.users))
	for id, u := range r.users {
		s[id] = *u
	}
	return s
}

func (r *fakeUserRepo) restore(s map[string]entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*entity.User, len(s))
	for id, u := range s {
		cp := u
		r.users[id] = &cp
	}
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

// fakeRedeemRunner serializa las transacciones de canje y, si fn falla,
// restaura el snapshot de invitaciones y usuarios (rollback). Así los
// perdedores del compare-and-swap revierten también su alta de usuario.
type fakeRedeemRunner struct {
	mu      sync.Mutex
	invites *fakeInviteRepo
	users   *fakeUserRepo
}

func (f *fakeRedeemRunner) RunRedeem(_ context.Context, fn func(
	inviteRepo repository.InviteRepository,
	userRepo repository.UserRepository,
) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	invSnap := f.invites.snapshot()
	userSnap := f.users.snapshot()
	if err := fn(f.invites, f.users); err != nil {
		f.invites.restore(invSnap)
		f.users.restore(userSnap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const testBaseURL = "https://app.stocktrack.test"

var testJWTCfg = auth.JWTConfig{Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "stocktrack-test"}

type inviteFixture struct {
	invites   *fakeInviteRepo
	users     *fakeUserRepo
	companies *fakeCompanyRepo
	uc        *invite.InviteUseCase
	companyID string
	inviterID string
}

func newInviteFixture(t *testing.T) *inviteFixture {
	t.Helper()
	invites := newFakeInviteRepo()
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	runner := &fakeRedeemRunner{invites: invites, users: users}

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

	inviter := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Email:     "ana@acme.test",
		Name:      "Ana",
		Role:      entity.RoleAdmin,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, users.Create(inviter))

	return &inviteFixture{
		invites:   invites,
		users:     users,
		companies: companies,
		uc:        invite.NewInviteUseCase(runner, invites, users, companies, testBaseURL, testJWTCfg),
		companyID: company.ID,
		inviterID: inviter.ID,
	}
}

func (f *inviteFixture) issue(t *testing.T, role string) *dto.InviteResponse {
	t.Helper()
	inv, err := f.uc.Issue(f.companyID, f.inviterID, dto.CreateInviteRequest{Role: role})
	require.NoError(t, err)
	return inv
}

// seedInvite inserta una invitación directa en el fake, con mutaciones para
// simular estados (expirada, usada).
func (f *inviteFixture) seedInvite(t *testing.T, mutate func(*entity.Invite)) *entity.Invite {
	t.Helper()
	now := time.Now().UTC()
	inv := &entity.Invite{
		ID:        uuid.New().String(),
		CompanyID: f.companyID,
		InvitedBy: f.inviterID,
		Token:     uuid.New().String(),
		Role:      entity.RoleUser,
		ExpiresAt: now.Add(entity.InviteTTL),
		CreatedAt: now,
	}
	if mutate != nil {
		mutate(inv)
	}
	require.NoError(t, f.invites.Create(inv))
	return inv
}

// seedActiveMembers agrega n usuarios activos extra a la company.
func (f *inviteFixture) seedActiveMembers(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		u := &entity.User{
			ID:        uuid.New().String(),
			CompanyID: f.companyID,
			Email:     fmt.Sprintf("miembro%d@acme.test", i),
			Name:      fmt.Sprintf("Miembro %d", i),
			Role:      entity.RoleUser,
			Active:    true,
		}
		require.NoError(t, f.users.Create(u))
	}
}

func acceptReq(i int) dto.AcceptInviteRequest {
	return dto.AcceptInviteRequest{
		Name:     fmt.Sprintf("Invitado %d", i),
		Email:    fmt.Sprintf("invitado%d@acme.test", i),
		Password: "supersegura",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Issue
// ──────────────────────────────────────────────────────────────────────────────

func TestIssue_TokenYVigencia(t *testing.T) {
	fx := newInviteFixture(t)

	inv := fx.issue(t, entity.RoleUser)

	assert.Regexp(t, `^[0-9a-f]{64}$`, inv.Token, "token de 32 bytes en hex")
	assert.Equal(t, entity.InviteStatePending, inv.State)
	assert.Equal(t, testBaseURL+"/invite/"+inv.Token, inv.URL)
	assert.WithinDuration(t, time.Now().UTC().Add(entity.InviteTTL), inv.ExpiresAt, time.Minute,
		"la vigencia es de 7 días desde la emisión")
}

func TestIssue_RolInvalido(t *testing.T) {
	fx := newInviteFixture(t)

	_, err := fx.uc.Issue(fx.companyID, fx.inviterID, dto.CreateInviteRequest{Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIssue_CupoLleno(t *testing.T) {
	fx := newInviteFixture(t)
	fx.seedActiveMembers(t, 4) // 1 admin + 4 = tope del plan free

	_, err := fx.uc.Issue(fx.companyID, fx.inviterID, dto.CreateInviteRequest{Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrUserLimitReached,
		"no se emiten invitaciones que no podrían canjearse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Preview
// ──────────────────────────────────────────────────────────────────────────────

func TestPreview_MuestraCompanyEInvitador(t *testing.T) {
	fx := newInviteFixture(t)
	inv := fx.issue(t, entity.RoleAdmin)

	prev, err := fx.uc.Preview(inv.Token)
	require.NoError(t, err)
	assert.Equal(t, "Acme Tools", prev.CompanyName)
	assert.Equal(t, "Ana", prev.InviterName)
	assert.Equal(t, entity.RoleAdmin, prev.Role)
}

func TestPreview_InvitacionMuerta_ErrorUniforme(t *testing.T) {
	fx := newInviteFixture(t)
	expirada := fx.seedInvite(t, func(inv *entity.Invite) {
		inv.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	})
	usada := fx.seedInvite(t, func(inv *entity.Invite) { inv.Used = true })

	// Inexistente, expirada y usada responden con el MISMO error: el endpoint
	// público no filtra cuál fue el motivo.
	for _, tok := range []string{"token-inexistente", expirada.Token, usada.Token} {
		_, err := fx.uc.Preview(tok)
		assert.ErrorIs(t, err, domain.ErrInviteInvalid, "token %q", tok)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Redeem
// ──────────────────────────────────────────────────────────────────────────────

func TestRedeem_CreaUsuarioConElRolPrometido(t *testing.T) {
	fx := newInviteFixture(t)
	inv := fx.issue(t, entity.RoleAdmin)

	sess, err := fx.uc.Redeem(context.Background(), inv.Token, acceptReq(1))
	require.NoError(t, err)

	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, entity.RoleAdmin, sess.User.Role, "el rol viene de la invitación, no del request")
	assert.Equal(t, fx.companyID, sess.User.CompanyID)
	assert.Equal(t, 2, sess.Company.MemberCount)

	stored, err := fx.invites.GetByToken(inv.Token)
	require.NoError(t, err)
	assert.True(t, stored.Used, "el canje marca la invitación como usada")
}

func TestRedeem_SegundoCanjeRechazado(t *testing.T) {
	fx := newInviteFixture(t)
	inv := fx.issue(t, entity.RoleUser)

	_, err := fx.uc.Redeem(context.Background(), inv.Token, acceptReq(1))
	require.NoError(t, err)

	_, err = fx.uc.Redeem(context.Background(), inv.Token, acceptReq(2))
	assert.ErrorIs(t, err, domain.ErrInviteInvalid, "cada invitación se canjea exactamente una vez")

	count, err := fx.users.CountActiveByCompany(fx.companyID)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "el segundo canje no debe dejar usuario")
}

func TestRedeem_EmailYaRegistrado(t *testing.T) {
	fx := newInviteFixture(t)
	inv := fx.issue(t, entity.RoleUser)

	_, err := fx.uc.Redeem(context.Background(), inv.Token, dto.AcceptInviteRequest{
		Name:     "Impostora",
		Email:    "ana@acme.test", // email del admin existente
		Password: "supersegura",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	stored, err := fx.invites.GetByToken(inv.Token)
	require.NoError(t, err)
	assert.False(t, stored.Used, "un canje fallido no debe consumir la invitación")
}

func TestRedeem_InvitacionExpirada(t *testing.T) {
	fx := newInviteFixture(t)
	expirada := fx.seedInvite(t, func(inv *entity.Invite) {
		inv.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	})

	_, err := fx.uc.Redeem(context.Background(), expirada.Token, acceptReq(1))
	assert.ErrorIs(t, err, domain.ErrInviteInvalid)

	count, err := fx.users.CountActiveByCompany(fx.companyID)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "una invitación expirada no crea usuarios")
}

func TestRedeem_CupoSeReverificaAlCanjear(t *testing.T) {
	fx := newInviteFixture(t)
	inv := fx.issue(t, entity.RoleUser) // emitida con cupo disponible
	fx.seedActiveMembers(t, 4)          // el cupo se llena después

	_, err := fx.uc.Redeem(context.Background(), inv.Token, acceptReq(1))
	assert.ErrorIs(t, err, domain.ErrUserLimitReached)
}

func TestRedeem_ValidaCampos(t *testing.T) {
	fx := newInviteFixture(t)
	inv := fx.issue(t, entity.RoleUser)

	_, err := fx.uc.Redeem(context.Background(), inv.Token, dto.AcceptInviteRequest{
		Name: "", Email: "x@acme.test", Password: "supersegura",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// De N canjes concurrentes del mismo token exactamente uno debe ganar; los
// demás reciben el error uniforme y su usuario queda revertido.
func TestRedeem_Concurrente_ExactamenteUnCanje(t *testing.T) {
	fx := newInviteFixture(t)
	inv := fx.issue(t, entity.RoleUser)

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = fx.uc.Redeem(context.Background(), inv.Token, acceptReq(i))
		}(i)
	}
	wg.Wait()

	won := 0
	for i, err := range errs {
		if err == nil {
			won++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInviteInvalid, "goroutine %d", i)
	}
	assert.Equal(t, 1, won, "exactamente un canje debe ganar el compare-and-swap")

	count, err := fx.users.CountActiveByCompany(fx.companyID)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "solo el emisor y el ganador deben quedar persistidos")

	stored, err := fx.invites.GetByToken(inv.Token)
	require.NoError(t, err)
	assert.True(t, stored.Used)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_EstadosDerivados(t *testing.T) {
	fx := newInviteFixture(t)
	pendiente := fx.issue(t, entity.RoleUser)
	usada := fx.seedInvite(t, func(inv *entity.Invite) { inv.Used = true })
	expirada := fx.seedInvite(t, func(inv *entity.Invite) {
		inv.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	})

	list, err := fx.uc.List(fx.companyID, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 3)

	byToken := make(map[string]string, 3)
	for _, inv := range list.Items {
		byToken[inv.Token] = inv.State
	}
	assert.Equal(t, entity.InviteStatePending, byToken[pendiente.Token])
	assert.Equal(t, entity.InviteStateUsed, byToken[usada.Token])
	assert.Equal(t, entity.InviteStateExpired, byToken[expirada.Token])
}
