package auth

import (
	"context"

	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// SignupTxRunner ejecuta el registro dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Company y usuario admin se crean juntos o
// no se crea nada.
type SignupTxRunner interface {
	RunSignup(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}
