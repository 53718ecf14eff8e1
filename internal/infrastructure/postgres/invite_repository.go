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

var _ repository.InviteRepository = (*InviteRepo)(nil)

// InviteRepo implementación del puerto InviteRepository sobre PostgreSQL (usable con pool o tx).
type InviteRepo struct {
	q Querier
}

// NewInviteRepository construye el adaptador de persistencia para invitaciones. Pasar pool o tx (Querier).
func NewInviteRepository(q Querier) *InviteRepo {
	return &InviteRepo{q: q}
}

const inviteColumns = `id, company_id, invited_by, token, role, expires_at, used, created_at`

// Create persiste una invitación. Devuelve domain.ErrDuplicate si el token colisiona.
func (r *InviteRepo) Create(invite *entity.Invite) error {
	query := `
		INSERT INTO invites (id, company_id, invited_by, token, role, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		invite.ID, invite.CompanyID, invite.InvitedBy, invite.Token, invite.Role,
		invite.ExpiresAt, invite.Used, invite.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// GetByToken busca por token. Sin filtro de company: el token es la credencial
// y los endpoints de validación/canje son públicos.
func (r *InviteRepo) GetByToken(token string) (*entity.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites WHERE token = $1`
	var inv entity.Invite
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&inv.ID, &inv.CompanyID, &inv.InvitedBy, &inv.Token, &inv.Role,
		&inv.ExpiresAt, &inv.Used, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invite by token: %w", err)
	}
	return &inv, nil
}

// ListByCompany lista las invitaciones de la company, más recientes primero.
func (r *InviteRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invite
	for rows.Next() {
		var inv entity.Invite
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.InvitedBy, &inv.Token, &inv.Role, &inv.ExpiresAt, &inv.Used, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// MarkUsed ejecuta el compare-and-swap used=false→true de forma atómica.
// Con dos transacciones concurrentes sobre la misma fila, la segunda espera el
// lock y al liberarse ya no matchea used=false: devuelve false y el caller
// debe abortar su transacción.
func (r *InviteRepo) MarkUsed(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE invites SET used = true WHERE id = $1 AND used = false`, id)
	if err != nil {
		return false, fmt.Errorf("mark invite used: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteByCompany elimina todas las invitaciones de la company (purga).
func (r *InviteRepo) DeleteByCompany(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invites WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete invites by company: %w", err)
	}
	return nil
}
