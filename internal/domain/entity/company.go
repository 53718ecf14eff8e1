package entity

import "time"

// Planes disponibles (deben coincidir con el CHECK de la tabla companies).
const (
	TierFree = "free"
	TierPro  = "pro"
)

// MaxUsersForTier devuelve el cupo de usuarios activos según el plan.
func MaxUsersForTier(tier string) int {
	if tier == TierPro {
		return 50
	}
	return 5
}

// Company representa una organización/tenant del sistema (multi-tenant).
// Code es el identificador corto visible (ej. "ACM042"), generado al registrar.
type Company struct {
	ID                       string
	Name                     string
	Code                     string
	Tier                     string // free, pro
	MaxUsers                 int
	DefaultLowStockThreshold *int // nil = sin umbral por defecto
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
