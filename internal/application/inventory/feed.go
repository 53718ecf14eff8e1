package inventory

import (
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// ActivityFeedUseCase lectura del registro de auditoría. El registro es
// append-only: aquí no hay escrituras, solo listados paginados.
type ActivityFeedUseCase struct {
	activityRepo repository.ActivityRepository
	itemRepo     repository.ItemRepository
}

// NewActivityFeedUseCase construye el caso de uso.
func NewActivityFeedUseCase(activityRepo repository.ActivityRepository, itemRepo repository.ItemRepository) *ActivityFeedUseCase {
	return &ActivityFeedUseCase{activityRepo: activityRepo, itemRepo: itemRepo}
}

// ListCompany feed de toda la company, más recientes primero.
func (uc *ActivityFeedUseCase) ListCompany(companyID string, limit, offset int) (*dto.ActivityListResponse, error) {
	activities, err := uc.activityRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return activityList(activities, limit, offset), nil
}

// ListItem historial de un ítem concreto. El ítem debe existir y pertenecer
// a la company; las actividades de ítems ya borrados se consultan por el
// feed general (su item_id quedó en NULL).
func (uc *ActivityFeedUseCase) ListItem(companyID, itemID string, limit, offset int) (*dto.ActivityListResponse, error) {
	item, err := uc.itemRepo.GetByIDAndCompany(itemID, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	activities, err := uc.activityRepo.ListByItem(itemID, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return activityList(activities, limit, offset), nil
}

func activityList(activities []*entity.Activity, limit, offset int) *dto.ActivityListResponse {
	out := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ActivityResponse{
			ID:           a.ID,
			Type:         a.Type,
			Quantity:     a.Quantity,
			OldQuantity:  a.OldQuantity,
			ItemID:       a.ItemID,
			ItemName:     a.ItemName,
			UserID:       a.UserID,
			UserName:     a.UserName,
			SessionTitle: a.SessionTitle,
			CreatedAt:    a.CreatedAt,
		})
	}
	return &dto.ActivityListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
