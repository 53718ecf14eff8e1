package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// ItemUseCase casos de uso de ítems. Toda operación que cambia cantidades
// escribe su entrada de auditoría en la misma transacción (TxRunner).
type ItemUseCase struct {
	txRunner    TxRunner
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:    txRunner,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

// Create crea un ítem y registra la actividad "created" en la misma transacción.
// La cantidad negativa se satura en 0 (no se rechaza). El barcode, si viene,
// se pre-chequea GLOBAL (es único entre tenants) además del UNIQUE de la tabla.
func (uc *ItemUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	qty := in.Quantity
	if qty < 0 {
		qty = 0
	}
	var barcode *string
	if in.Barcode != "" {
		inUse, err := uc.itemRepo.BarcodeInUse(in.Barcode)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, domain.ErrDuplicate
		}
		b := in.Barcode
		barcode = &b
	}
	actor, err := uc.actor(userID, companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &entity.Item{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              in.Name,
		Quantity:          qty,
		Barcode:           barcode,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	activity := newActivity(item, actor, entity.ActivityCreated, qty, nil, nil, now)

	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, activityRepo repository.ActivityRepository) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		return activityRepo.Create(activity)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// GetByID obtiene un ítem de la company con su estado derivado.
// Un ítem ajeno o inexistente devuelve (nil, nil).
func (uc *ItemUseCase) GetByID(companyID, itemID string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByIDAndCompany(itemID, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item)
}

// GetByBarcode es la búsqueda del escáner: por código de barras DENTRO de la company.
func (uc *ItemUseCase) GetByBarcode(companyID, barcode string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByBarcodeAndCompany(barcode, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item)
}

// List lista los ítems de la company con paginación, más recientes primero.
func (uc *ItemUseCase) List(companyID string, limit, offset int) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defaultThreshold, err := uc.companyThreshold(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *itemToResponse(it, defaultThreshold))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateQuantity fija la cantidad ABSOLUTA del ítem (saturada en 0) y registra
// la actividad en la misma transacción: "added" si la nueva cantidad es mayor
// o igual, "removed" si es menor, con quantity = |nueva − anterior| y
// old_quantity = anterior. Una actualización sin cambio emite (added, 0).
func (uc *ItemUseCase) UpdateQuantity(ctx context.Context, companyID, userID, itemID string, newQuantity int) (*dto.ItemResponse, error) {
	if newQuantity < 0 {
		newQuantity = 0
	}
	actor, err := uc.actor(userID, companyID)
	if err != nil {
		return nil, err
	}

	var updated *entity.Item
	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, activityRepo repository.ActivityRepository) error {
		item, err := itemRepo.GetByIDAndCompanyForUpdate(itemID, companyID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		old := item.Quantity
		now := time.Now().UTC()
		item.Quantity = newQuantity
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		actType, magnitude := deltaActivity(old, newQuantity)
		if err := activityRepo.Create(newActivity(item, actor, actType, magnitude, &old, nil, now)); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(updated)
}

// UpdateThreshold fija o limpia el umbral de stock bajo propio del ítem
// (nil = volver al default de la company). No genera actividad: el umbral
// no es un cambio de inventario.
func (uc *ItemUseCase) UpdateThreshold(companyID, itemID string, threshold *int) (*dto.ItemResponse, error) {
	if threshold != nil && *threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByIDAndCompany(itemID, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.LowStockThreshold = threshold
	item.UpdatedAt = time.Now().UTC()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// Delete borra el ítem registrando antes la actividad "deleted" (cantidad al
// momento del borrado), todo en una transacción. El ON DELETE SET NULL de la
// tabla deja item_id en NULL; los snapshots conservan el nombre.
func (uc *ItemUseCase) Delete(ctx context.Context, companyID, userID, itemID string) error {
	actor, err := uc.actor(userID, companyID)
	if err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, activityRepo repository.ActivityRepository) error {
		item, err := itemRepo.GetByIDAndCompanyForUpdate(itemID, companyID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		now := time.Now().UTC()
		if err := activityRepo.Create(newActivity(item, actor, entity.ActivityDeleted, item.Quantity, nil, nil, now)); err != nil {
			return err
		}
		return itemRepo.Delete(item.ID, companyID)
	})
}

// actor carga el usuario autenticado para el snapshot user_name.
func (uc *ItemUseCase) actor(userID, companyID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByIDAndCompany(userID, companyID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func (uc *ItemUseCase) companyThreshold(companyID string) (*int, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return company.DefaultLowStockThreshold, nil
}

func (uc *ItemUseCase) toResponse(item *entity.Item) (*dto.ItemResponse, error) {
	defaultThreshold, err := uc.companyThreshold(item.CompanyID)
	if err != nil {
		return nil, err
	}
	return itemToResponse(item, defaultThreshold), nil
}

// deltaActivity clasifica un cambio de cantidad: added si sube o queda igual,
// removed si baja; la magnitud es siempre |new − old|.
func deltaActivity(old, new int) (string, int) {
	if new >= old {
		return entity.ActivityAdded, new - old
	}
	return entity.ActivityRemoved, old - new
}

// newActivity arma la entrada de auditoría con los snapshots desnormalizados.
func newActivity(item *entity.Item, actor *entity.User, actType string, quantity int, oldQuantity *int, sessionTitle *string, now time.Time) *entity.Activity {
	itemID := item.ID
	return &entity.Activity{
		ID:           uuid.New().String(),
		CompanyID:    item.CompanyID,
		UserID:       actor.ID,
		ItemID:       &itemID,
		Type:         actType,
		Quantity:     quantity,
		OldQuantity:  oldQuantity,
		ItemName:     item.Name,
		UserName:     actor.Name,
		SessionTitle: sessionTitle,
		CreatedAt:    now,
	}
}

func itemToResponse(it *entity.Item, companyDefault *int) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:                it.ID,
		CompanyID:         it.CompanyID,
		Name:              it.Name,
		Quantity:          it.Quantity,
		Barcode:           it.Barcode,
		LowStockThreshold: it.LowStockThreshold,
		Status:            it.Status(companyDefault),
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}
