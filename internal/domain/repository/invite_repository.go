package repository

import "github.com/stocktrackhq/stocktrack-api/internal/domain/entity"

// InviteRepository define el puerto de persistencia para Invite (DIP).
type InviteRepository interface {
	// Create persiste la invitación. Devuelve domain.ErrDuplicate si el token
	// colisiona (probabilísticamente imposible con 256 bits).
	Create(invite *entity.Invite) error
	// GetByToken busca por token sin filtro de company: el token ES la
	// credencial y los endpoints públicos de canje no tienen tenant.
	GetByToken(token string) (*entity.Invite, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invite, error)
	// MarkUsed ejecuta el compare-and-swap used=false→true. Devuelve true solo
	// si esta llamada ganó la carrera (exactamente un canje por invitación).
	MarkUsed(id string) (bool, error)
	DeleteByCompany(companyID string) error
}
