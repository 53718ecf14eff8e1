package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stocktrackhq/stocktrack-api/internal/application/auth"
	"github.com/stocktrackhq/stocktrack-api/internal/application/inventory"
	"github.com/stocktrackhq/stocktrack-api/internal/application/invite"
	"github.com/stocktrackhq/stocktrack-api/internal/application/usecase"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// Ensure TxRunner implements every consumer-side transaction port.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ auth.SignupTxRunner = (*TxRunner)(nil)
var _ invite.RedeemTxRunner = (*TxRunner)(nil)
var _ usecase.ReassignTxRunner = (*TxRunner)(nil)
var _ usecase.PurgeTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es la forma usada por el motor de inventario: mutación de ítem + actividad, ambas o ninguna.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	activityRepo := NewActivityRepository(tx)

	if err := fn(itemRepo, activityRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSignup inicia una transacción con repos de companies y users (registro:
// company + usuario admin se crean juntos o no se crea nada).
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(companyRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRedeem inicia una transacción con repos de invites y users (canje de
// invitación: alta del usuario y CAS del flag used en la misma transacción).
func (r *TxRunner) RunRedeem(ctx context.Context, fn func(
	inviteRepo repository.InviteRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inviteRepo := NewInviteRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(inviteRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReassign inicia una transacción con repos de users y activities (borrado
// permanente de usuario: reasignar su historial y borrar la fila, juntos).
func (r *TxRunner) RunReassign(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	activityRepo := NewActivityRepository(tx)

	if err := fn(userRepo, activityRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurge inicia una transacción con todos los repos del tenant (borrado de
// company: vacía cada tabla dependiente y elimina la company, todo o nada).
func (r *TxRunner) RunPurge(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	activityRepo repository.ActivityRepository,
	inviteRepo repository.InviteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	userRepo := NewUserRepository(tx)
	itemRepo := NewItemRepository(tx)
	activityRepo := NewActivityRepository(tx)
	inviteRepo := NewInviteRepository(tx)

	if err := fn(companyRepo, userRepo, itemRepo, activityRepo, inviteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
