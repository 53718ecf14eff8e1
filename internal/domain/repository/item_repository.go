package repository

import "github.com/stocktrackhq/stocktrack-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// Todas las consultas van acotadas por company_id salvo BarcodeInUse,
// que es global a propósito (el código de barras es único entre tenants).
type ItemRepository interface {
	// Create persiste el ítem. Devuelve domain.ErrDuplicate si el barcode ya existe.
	Create(item *entity.Item) error
	GetByIDAndCompany(id, companyID string) (*entity.Item, error)
	// GetByIDAndCompanyForUpdate bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDAndCompanyForUpdate(id, companyID string) (*entity.Item, error)
	// GetByBarcodeAndCompany es la búsqueda del escáner: acotada al tenant.
	GetByBarcodeAndCompany(barcode, companyID string) (*entity.Item, error)
	// BarcodeInUse consulta el barcode SIN filtrar por company: la unicidad
	// del código es global y este pre-chequeo lo refleja. Única consulta
	// cross-tenant permitida en este puerto.
	BarcodeInUse(barcode string) (bool, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id, companyID string) error
	DeleteByCompany(companyID string) error
}
