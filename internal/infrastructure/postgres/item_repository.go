package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, company_id, name, quantity, barcode, low_stock_threshold, created_at, updated_at`

// Create persiste un nuevo ítem. Devuelve domain.ErrDuplicate si el barcode ya existe.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, company_id, name, quantity, barcode, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.Name, item.Quantity, item.Barcode,
		item.LowStockThreshold, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene un ítem por ID dentro de la company.
// Un ítem de otra company devuelve (nil, nil), igual que uno inexistente.
func (r *ItemRepo) GetByIDAndCompany(id, companyID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID), "get item by id")
}

// GetByIDAndCompanyForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *ItemRepo) GetByIDAndCompanyForUpdate(id, companyID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND company_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID), "get item for update")
}

// GetByBarcodeAndCompany busca por código de barras dentro de la company (escáner).
func (r *ItemRepo) GetByBarcodeAndCompany(barcode, companyID string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE barcode = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode, companyID), "get item by barcode")
}

// BarcodeInUse consulta si el barcode existe en CUALQUIER company.
// Única consulta sin filtro de tenant en este repositorio: la unicidad del
// código de barras es global (respaldada por el UNIQUE de la tabla).
func (r *ItemRepo) BarcodeInUse(barcode string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM items WHERE barcode = $1)`, barcode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check barcode: %w", err)
	}
	return exists, nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.CompanyID, &it.Name, &it.Quantity, &it.Barcode,
		&it.LowStockThreshold, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

// ListByCompany lista los ítems de la company con paginación, más recientes primero.
func (r *ItemRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.CompanyID, &it.Name, &it.Quantity, &it.Barcode, &it.LowStockThreshold, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un ítem (cantidad y umbral).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, quantity = $3, barcode = $4, low_stock_threshold = $5, updated_at = $6
		WHERE id = $1 AND company_id = $7`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.Barcode, item.LowStockThreshold,
		item.UpdatedAt, item.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un ítem de la company. Las actividades que lo referencian
// pasan a item_id NULL por el ON DELETE SET NULL de la tabla.
func (r *ItemRepo) Delete(id, companyID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM items WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// DeleteByCompany elimina todos los ítems de la company (purga).
func (r *ItemRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete items by company: %w", err)
	}
	return nil
}
