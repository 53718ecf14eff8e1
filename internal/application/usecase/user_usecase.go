package usecase

import (
	"context"
	"time"

	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/entity"
	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

// UserUseCase gestión de miembros de la company: listar, borrado suave y
// borrado permanente con reasignación del historial.
type UserUseCase struct {
	txRunner ReassignTxRunner
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(txRunner ReassignTxRunner, userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{txRunner: txRunner, userRepo: userRepo}
}

// List lista los miembros de la company, activos e inactivos. El hash de
// password nunca sale del repo hacia el DTO.
func (uc *UserUseCase) List(companyID string, limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *userToResponse(u))
	}
	return &dto.UserListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SoftDelete desactiva al usuario (Active=false): no puede volver a entrar
// pero su historial queda intacto y sigue contando como miembro visible.
// Un admin no puede desactivarse a sí mismo.
func (uc *UserUseCase) SoftDelete(companyID, actorID, targetID string) error {
	if targetID == actorID {
		return domain.ErrInvalidInput
	}
	target, err := uc.userRepo.GetByIDAndCompany(targetID, companyID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	target.Active = false
	target.UpdatedAt = time.Now().UTC()
	return uc.userRepo.Update(target)
}

// PermanentDelete borra la fila del usuario tras reasignar todo su historial
// al admin que ejecuta el borrado, con el nombre anotado para no perder la
// autoría original. Exige repetir la frase exacta "DELETE <nombre>" y ambos
// pasos van en la misma transacción. Un admin no puede borrarse a sí mismo.
func (uc *UserUseCase) PermanentDelete(ctx context.Context, companyID, actorID, targetID, confirm string) error {
	if targetID == actorID {
		return domain.ErrInvalidInput
	}
	target, err := uc.userRepo.GetByIDAndCompany(targetID, companyID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	if confirm != "DELETE "+target.Name {
		return domain.ErrConfirmationMismatch
	}
	actor, err := uc.userRepo.GetByIDAndCompany(actorID, companyID)
	if err != nil {
		return err
	}
	if actor == nil {
		return domain.ErrUnauthorized
	}

	suffix := " (deleted by " + actor.Name + ")"
	return uc.txRunner.RunReassign(ctx, func(
		userRepo repository.UserRepository,
		activityRepo repository.ActivityRepository,
	) error {
		if err := activityRepo.ReassignUser(target.ID, actor.ID, companyID, suffix); err != nil {
			return err
		}
		return userRepo.Delete(target.ID, companyID)
	})
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
