package dto

import "time"

// CompanyResponse salida de una company.
// MemberCount es el número de usuarios activos (cupo del plan).
type CompanyResponse struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	Code                     string    `json:"code"`
	Tier                     string    `json:"tier"`
	MaxUsers                 int       `json:"max_users"`
	DefaultLowStockThreshold *int      `json:"default_low_stock_threshold,omitempty"`
	MemberCount              int       `json:"member_count"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// UpdateCompanyThresholdRequest entrada para fijar o limpiar el umbral de
// stock bajo por defecto del tenant (null = quitar umbral).
type UpdateCompanyThresholdRequest struct {
	Threshold *int `json:"threshold" validate:"omitempty,min=0"`
}

// DeleteCompanyRequest cuerpo del borrado de company: la frase de confirmación
// debe ser exactamente "DELETE <nombre de la company>".
type DeleteCompanyRequest struct {
	Confirm string `json:"confirm" validate:"required"`
}
