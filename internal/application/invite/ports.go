package invite

import (
	"context"

	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// RedeemTxRunner ejecuta el canje de invitación en una transacción: alta del
// usuario y compare-and-swap del used bajo el mismo commit. Si el CAS pierde,
// el rollback deshace también el usuario.
type RedeemTxRunner interface {
	RunRedeem(ctx context.Context, fn func(
		inviteRepo repository.InviteRepository,
		userRepo repository.UserRepository,
	) error) error
}
