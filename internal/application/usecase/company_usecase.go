package usecase

import (
	"context"
	"time"

	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// CompanyUseCase operaciones sobre la company del token: info, umbral por
// defecto y borrado total del tenant.
type CompanyUseCase struct {
	txRunner    PurgeTxRunner
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(txRunner PurgeTxRunner, companyRepo repository.CompanyRepository, userRepo repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{txRunner: txRunner, companyRepo: companyRepo, userRepo: userRepo}
}

// Info devuelve la company del token con su conteo de miembros activos.
func (uc *CompanyUseCase) Info(companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	members, err := uc.userRepo.CountActiveByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return companyToResponse(company, members), nil
}

// UpdateThreshold fija o limpia el umbral de stock bajo por defecto de la
// company (nil = sin umbral: ningún ítem sin override se marca low_stock).
func (uc *CompanyUseCase) UpdateThreshold(companyID string, threshold *int) (*dto.CompanyResponse, error) {
	if threshold != nil && *threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.DefaultLowStockThreshold = threshold
	company.UpdatedAt = time.Now().UTC()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	members, err := uc.userRepo.CountActiveByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return companyToResponse(company, members), nil
}

// Purge borra la company y todo su contenido (actividades, ítems,
// invitaciones, usuarios) en una sola transacción. Exige repetir la frase
// exacta "DELETE <nombre de la company>". No hay deshacer.
func (uc *CompanyUseCase) Purge(ctx context.Context, companyID, confirm string) error {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if confirm != "DELETE "+company.Name {
		return domain.ErrConfirmationMismatch
	}
	return uc.txRunner.RunPurge(ctx, func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		itemRepo repository.ItemRepository,
		activityRepo repository.ActivityRepository,
		inviteRepo repository.InviteRepository,
	) error {
		if err := activityRepo.DeleteByCompany(companyID); err != nil {
			return err
		}
		if err := itemRepo.DeleteByCompany(companyID); err != nil {
			return err
		}
		if err := inviteRepo.DeleteByCompany(companyID); err != nil {
			return err
		}
		if err := userRepo.DeleteByCompany(companyID); err != nil {
			return err
		}
		return companyRepo.Delete(companyID)
	})
}

func companyToResponse(c *entity.Company, members int) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                       c.ID,
		Name:                     c.Name,
		Code:                     c.Code,
		Tier:                     c.Tier,
		MaxUsers:                 c.MaxUsers,
		DefaultLowStockThreshold: c.DefaultLowStockThreshold,
		MemberCount:              members,
		CreatedAt:                c.CreatedAt,
		UpdatedAt:                c.UpdatedAt,
	}
}
