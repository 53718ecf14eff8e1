package inventory

import (
	"context"

	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación del ítem y su
// entrada de auditoría se confirmen juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		activityRepo repository.ActivityRepository,
	) error) error
}
