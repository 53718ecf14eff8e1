package auth

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
	"github.com/stocktrackhq/stocktrack-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Reintentos del registro cuando el code generado colisiona con uno existente.
const maxCodeAttempts = 3

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro de company y login.
type AuthUseCase struct {
	txRunner    SignupTxRunner
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner SignupTxRunner, userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// RegisterCompany crea la company (plan free, code autogenerado) y su primer
// usuario admin en una sola transacción, y devuelve la sesión iniciada.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
// Si el code colisiona se reintenta la transacción completa con dígitos
// nuevos (una violación de unique aborta la tx en curso, no sirve reinsertar).
func (uc *AuthUseCase) RegisterCompany(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.SessionResponse, error) {
	if in.CompanyName == "" || in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var (
		company *entity.Company
		user    *entity.User
	)
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		now := time.Now().UTC()
		company = &entity.Company{
			ID:        uuid.New().String(),
			Name:      in.CompanyName,
			Code:      companyCode(in.CompanyName),
			Tier:      entity.TierFree,
			MaxUsers:  entity.MaxUsersForTier(entity.TierFree),
			CreatedAt: now,
			UpdatedAt: now,
		}
		user = &entity.User{
			ID:           uuid.New().String(),
			CompanyID:    company.ID,
			Email:        in.Email,
			PasswordHash: string(hash),
			Name:         in.Name,
			Role:         entity.RoleAdmin,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		err = uc.txRunner.RunSignup(ctx, func(
			companyRepo repository.CompanyRepository,
			userRepo repository.UserRepository,
		) error {
			if err := companyRepo.Create(company); err != nil {
				return err
			}
			return userRepo.Create(user)
		})
		if err != domain.ErrDuplicate {
			break // éxito, o un error que reintentar no arregla
		}
	}
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:   token,
		User:    *toUserResponse(user),
		Company: *toCompanyResponse(company, 1),
	}, nil
}

// Login verifica email/password, actualiza last_login_at, genera JWT y retorna
// la sesión. Un usuario desactivado (borrado suave) no puede entrar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	members, err := uc.userRepo.CountActiveByCompany(user.CompanyID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:   token,
		User:    *toUserResponse(user),
		Company: *toCompanyResponse(company, members),
	}, nil
}

// companyCode genera el code visible: tres letras del nombre (rellenas con X)
// más tres dígitos aleatorios. Ej: "Acme Tools" → "ACM481".
func companyCode(name string) string {
	letters := make([]rune, 0, 3)
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
			if len(letters) == 3 {
				break
			}
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	return fmt.Sprintf("%s%03d", string(letters), rand.IntN(1000))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
	if c == nil {
		return nil
	}
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
