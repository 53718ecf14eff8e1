package invite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stocktrackhq/stocktrack-api/internal/application/auth"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
	"github.com/stocktrackhq/stocktrack-api/pkg/jwt"
	"github.com/stocktrackhq/stocktrack-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// Bytes aleatorios del token de invitación (64 chars en hex).
const tokenBytes = 32

// InviteUseCase ciclo de vida de invitaciones: emitir, previsualizar,
// canjear y listar. Toda falla de canje (token inexistente, vencido o ya
// usado) responde con el MISMO error para no filtrar cuál fue el caso.
type InviteUseCase struct {
	txRunner    RedeemTxRunner
	inviteRepo  repository.InviteRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	baseURL     string
	jwtCfg      auth.JWTConfig
}

// NewInviteUseCase construye el caso de uso.
func NewInviteUseCase(
	txRunner RedeemTxRunner,
	inviteRepo repository.InviteRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	baseURL string,
	jwtCfg auth.JWTConfig,
) *InviteUseCase {
	return &InviteUseCase{
		txRunner:    txRunner,
		inviteRepo:  inviteRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		baseURL:     baseURL,
		jwtCfg:      jwtCfg,
	}
}

// Issue emite una invitación con vigencia de 7 días. Rechaza con
// domain.ErrUserLimitReached si la company ya está en su tope de
// usuarios activos según el plan.
func (uc *InviteUseCase) Issue(companyID, inviterID string, in dto.CreateInviteRequest) (*dto.InviteResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	members, err := uc.userRepo.CountActiveByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if members >= company.MaxUsers {
		return nil, domain.ErrUserLimitReached
	}
	tok, err := token.Generate(tokenBytes)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	inv := &entity.Invite{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		InvitedBy: inviterID,
		Token:     tok,
		Role:      in.Role,
		ExpiresAt: now.Add(entity.InviteTTL),
		Used:      false,
		CreatedAt: now,
	}
	if err := uc.inviteRepo.Create(inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv, now), nil
}

// Preview muestra al invitado qué está aceptando: company, quién invita,
// rol y vencimiento. Nunca expone IDs internos. Una invitación muerta
// responde domain.ErrInviteInvalid sin distinguir el motivo.
func (uc *InviteUseCase) Preview(tok string) (*dto.InvitePreviewResponse, error) {
	inv, err := uc.inviteRepo.GetByToken(tok)
	if err != nil {
		return nil, err
	}
	if inv == nil || !inv.Redeemable(time.Now().UTC()) {
		return nil, domain.ErrInviteInvalid
	}
	company, err := uc.companyRepo.GetByID(inv.CompanyID)
	if err != nil {
		return nil, err
	}
	inviter, err := uc.userRepo.GetByIDAndCompany(inv.InvitedBy, inv.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || inviter == nil {
		return nil, domain.ErrInviteInvalid
	}
	return &dto.InvitePreviewResponse{
		CompanyName: company.Name,
		InviterName: inviter.Name,
		Role:        inv.Role,
		ExpiresAt:   inv.ExpiresAt,
	}, nil
}

// Redeem canjea la invitación creando el usuario con el rol prometido y
// devuelve la sesión iniciada. El alta y el marcado used=true van en la
// misma transacción: de N canjes concurrentes del mismo token exactamente
// uno gana el compare-and-swap; los demás revierten su usuario y reciben
// domain.ErrInviteInvalid.
func (uc *InviteUseCase) Redeem(ctx context.Context, tok string, in dto.AcceptInviteRequest) (*dto.SessionResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.inviteRepo.GetByToken(tok)
	if err != nil {
		return nil, err
	}
	if inv == nil || !inv.Redeemable(time.Now().UTC()) {
		return nil, domain.ErrInviteInvalid
	}
	company, err := uc.companyRepo.GetByID(inv.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrInviteInvalid
	}
	members, err := uc.userRepo.CountActiveByCompany(inv.CompanyID)
	if err != nil {
		return nil, err
	}
	if members >= company.MaxUsers {
		return nil, domain.ErrUserLimitReached
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    inv.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         inv.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.RunRedeem(ctx, func(
		inviteRepo repository.InviteRepository,
		userRepo repository.UserRepository,
	) error {
		existing, err := userRepo.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}
		won, err := inviteRepo.MarkUsed(inv.ID)
		if err != nil {
			return err
		}
		if !won {
			return domain.ErrInviteInvalid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	jwtTok, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:   jwtTok,
		User:    *toUserResponse(user),
		Company: *toCompanyResponse(company, members+1),
	}, nil
}

// List lista las invitaciones de la company con su estado derivado al momento
// de la consulta.
func (uc *InviteUseCase) List(companyID string, limit, offset int) (*dto.InviteListResponse, error) {
	invites, err := uc.inviteRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := make([]dto.InviteResponse, 0, len(invites))
	for _, inv := range invites {
		out = append(out, *uc.toResponse(inv, now))
	}
	return &dto.InviteListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *InviteUseCase) toResponse(inv *entity.Invite, now time.Time) *dto.InviteResponse {
	return &dto.InviteResponse{
		ID:        inv.ID,
		Role:      inv.Role,
		Token:     inv.Token,
		URL:       uc.baseURL + "/invite/" + inv.Token,
		State:     inv.State(now),
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toCompanyResponse(c *entity.Company, members int) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                       c.ID,
		Name:                     c.Name,
		Code:                     c.Code,
		Tier:                     c.Tier,
		MaxUsers:                 c.MaxUsers,
		DefaultLowStockThreshold: c.DefaultLowStockThreshold,
		MemberCount:              members,
		CreatedAt:                c.CreatedAt,
		UpdatedAt:                c.UpdatedAt,
	}
}
