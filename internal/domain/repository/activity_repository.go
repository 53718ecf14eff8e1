package repository

import "github.com/stocktrackhq/stocktrack-api/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para el registro de
// auditoría. El contrato es append-only: no hay Update ni Delete individual.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	// ListByCompany devuelve el feed de la company, más reciente primero.
	ListByCompany(companyID string, limit, offset int) ([]*entity.Activity, error)
	// ListByItem devuelve el historial de un ítem, más reciente primero.
	ListByItem(itemID, companyID string, limit, offset int) ([]*entity.Activity, error)
	// ReassignUser transfiere la autoría de las actividades de fromUserID a
	// toUserID y concatena suffix al user_name desnormalizado (borrado
	// permanente de usuario: el historial nunca se pierde).
	ReassignUser(fromUserID, toUserID, companyID, suffix string) error
	DeleteByCompany(companyID string) error
}
