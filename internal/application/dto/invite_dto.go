package dto

import "time"

// CreateInviteRequest entrada para emitir una invitación (solo admin).
type CreateInviteRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// InviteResponse salida de una invitación para el admin que la gestiona.
// State es derivado: pending, used o expired.
type InviteResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	State     string    `json:"state"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// InviteListResponse listado paginado de invitaciones de la company.
type InviteListResponse struct {
	Items []InviteResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// InvitePreviewResponse lo que ve el invitado ANTES de canjear: nombre de la
// company, quién invita, rol ofrecido y vencimiento. Nunca IDs internos.
type InvitePreviewResponse struct {
	CompanyName string    `json:"company_name"`
	InviterName string    `json:"inviter_name"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AcceptInviteRequest entrada del canje: datos del nuevo usuario.
type AcceptInviteRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
