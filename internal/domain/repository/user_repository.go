package repository

import "github.com/stocktrackhq/stocktrack-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste un usuario. Devuelve domain.ErrEmailAlreadyExists si el
	// email ya está registrado (único global).
	Create(user *entity.User) error
	// GetByEmail busca por email en todas las companies (login y pre-chequeo
	// de duplicados; el email es único global por diseño).
	GetByEmail(email string) (*entity.User, error)
	// GetByIDAndCompany busca por ID dentro de la company. Un usuario de otra
	// company es indistinguible de uno inexistente (nil, nil).
	GetByIDAndCompany(id, companyID string) (*entity.User, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	// CountActiveByCompany cuenta usuarios con Active=true (cupo del plan).
	CountActiveByCompany(companyID string) (int, error)
	Update(user *entity.User) error
	// Delete borra la fila. El caller debe haber reasignado las actividades
	// del usuario dentro de la misma transacción.
	Delete(id, companyID string) error
	DeleteByCompany(companyID string) error
}
