package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// BatchAdjustUseCase aplica una sesión de conteo: varios deltas de cantidad
// bajo un mismo título, todo o nada en una sola transacción.
type BatchAdjustUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
}

// NewBatchAdjustUseCase construye el caso de uso.
func NewBatchAdjustUseCase(txRunner TxRunner, userRepo repository.UserRepository) *BatchAdjustUseCase {
	return &BatchAdjustUseCase{txRunner: txRunner, userRepo: userRepo}
}

// Apply aplica los deltas relativos de la sesión. Cada ítem se bloquea
// (FOR UPDATE) en orden de ID para evitar interbloqueos entre sesiones
// concurrentes; un ítem inexistente o ajeno aborta la sesión completa.
// La nueva cantidad se satura en 0 y cada ajuste registra su actividad
// con session_title; un delta 0 también queda registrado como (added, 0).
func (uc *BatchAdjustUseCase) Apply(ctx context.Context, companyID, userID string, in dto.BatchAdjustRequest) (*dto.BatchAdjustResponse, error) {
	if in.SessionTitle == "" || len(in.Adjustments) == 0 {
		return nil, domain.ErrInvalidInput
	}
	actor, err := uc.userRepo.GetByIDAndCompany(userID, companyID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}

	adjustments := make([]dto.BatchAdjustment, len(in.Adjustments))
	copy(adjustments, in.Adjustments)
	sort.Slice(adjustments, func(i, j int) bool { return adjustments[i].ItemID < adjustments[j].ItemID })

	title := in.SessionTitle
	applied := 0
	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, activityRepo repository.ActivityRepository) error {
		for _, adj := range adjustments {
			item, err := itemRepo.GetByIDAndCompanyForUpdate(adj.ItemID, companyID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			old := item.Quantity
			newQty := old + adj.Delta
			if newQty < 0 {
				newQty = 0
			}
			now := time.Now().UTC()
			item.Quantity = newQty
			item.UpdatedAt = now
			if err := itemRepo.Update(item); err != nil {
				return err
			}
			actType, magnitude := deltaActivity(old, newQty)
			if err := activityRepo.Create(newActivity(item, actor, actType, magnitude, &old, &title, now)); err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.BatchAdjustResponse{Applied: applied}, nil
}
