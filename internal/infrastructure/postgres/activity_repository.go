package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL (usable con pool o tx).
// El registro es append-only: no hay UPDATE de contenido ni DELETE individual.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador del registro de auditoría. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

const activityColumns = `id, company_id, user_id, item_id, type, quantity, old_quantity, item_name, user_name, session_title, created_at`

// Create persiste una entrada de auditoría.
func (r *ActivityRepo) Create(a *entity.Activity) error {
	query := `
		INSERT INTO activities (id, company_id, user_id, item_id, type, quantity, old_quantity, item_name, user_name, session_title, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CompanyID, a.UserID, a.ItemID, a.Type, a.Quantity, a.OldQuantity,
		a.ItemName, a.UserName, a.SessionTitle, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListByCompany devuelve el feed de la company, más reciente primero.
func (r *ActivityRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return r.scanList(rows)
}

// ListByItem devuelve el historial de un ítem, más reciente primero.
func (r *ActivityRepo) ListByItem(itemID, companyID string, limit, offset int) ([]*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE item_id = $1 AND company_id = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, itemID, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activities by item: %w", err)
	}
	return r.scanList(rows)
}

func (r *ActivityRepo) scanList(rows pgx.Rows) ([]*entity.Activity, error) {
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.UserID, &a.ItemID, &a.Type, &a.Quantity, &a.OldQuantity, &a.ItemName, &a.UserName, &a.SessionTitle, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ReassignUser transfiere la autoría de fromUserID a toUserID y concatena
// suffix al user_name desnormalizado. Única mutación permitida sobre la tabla:
// preserva el historial cuando se borra un usuario de forma permanente.
func (r *ActivityRepo) ReassignUser(fromUserID, toUserID, companyID, suffix string) error {
	query := `
		UPDATE activities SET user_id = $2, user_name = user_name || $3
		WHERE user_id = $1 AND company_id = $4`
	_, err := r.q.Exec(context.Background(), query, fromUserID, toUserID, suffix, companyID)
	if err != nil {
		return fmt.Errorf("reassign activities: %w", err)
	}
	return nil
}

// DeleteByCompany elimina todas las actividades de la company (purga).
func (r *ActivityRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM activities WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete activities by company: %w", err)
	}
	return nil
}
