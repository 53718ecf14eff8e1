package usecase

import (
	"context"

	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// ReassignTxRunner ejecuta el borrado permanente de un usuario en una
// transacción: reasignación de su historial al admin y borrado de la fila
// bajo el mismo commit.
type ReassignTxRunner interface {
	RunReassign(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		activityRepo repository.ActivityRepository,
	) error) error
}

// PurgeTxRunner ejecuta el borrado total de una company en una transacción:
// las cinco tablas del tenant se vacían juntas o ninguna.
type PurgeTxRunner interface {
	RunPurge(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		itemRepo repository.ItemRepository,
		activityRepo repository.ActivityRepository,
		inviteRepo repository.InviteRepository,
	) error) error
}
