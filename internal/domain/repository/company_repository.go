package repository

import "github.com/stocktrackhq/stocktrack-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create persiste la company. Devuelve domain.ErrDuplicate si el code ya existe.
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	// Delete borra la fila de la company. Solo debe invocarse dentro de la
	// transacción de purga, después de vaciar las tablas dependientes.
	Delete(id string) error
}
