package dto

import "time"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios de la company.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// DeleteUserRequest cuerpo del borrado permanente: la frase de confirmación
// debe ser exactamente "DELETE <nombre del usuario>".
type DeleteUserRequest struct {
	Confirm string `json:"confirm" validate:"required"`
}
