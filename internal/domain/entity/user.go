package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole indica si el rol es uno de los aceptados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User representa un usuario del sistema (pertenece a una Company).
// Active=false es el borrado suave: la fila existe pero el login se rechaza.
type User struct {
	ID           string
	CompanyID    string
	Email        string // único global, no por company
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, user
	Active       bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
