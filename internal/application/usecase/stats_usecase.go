package usecase

import (
	"context"

	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// StatsUseCase agregados del dashboard. Solo lectura.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetStats devuelve los contadores del tenant: ítems, unidades, stock bajo y
// agotado (excluyentes), miembros activos y actividades desde la medianoche UTC.
func (uc *StatsUseCase) GetStats(ctx context.Context, companyID string) (*dto.StatsResponse, error) {
	stats, err := uc.statsRepo.GetCompanyStats(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalItems:    stats.TotalItems,
		TotalUnits:    stats.TotalUnits,
		LowStock:      stats.LowStock,
		OutOfStock:    stats.OutOfStock,
		ActiveMembers: stats.ActiveMembers,
		ActivityToday: stats.ActivityToday,
	}, nil
}
