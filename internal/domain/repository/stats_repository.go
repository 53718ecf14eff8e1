package repository

import "context"

// CompanyStats resultado crudo de la consulta agregada del dashboard.
// Lo produce la DB; el use case lo convierte en DTO.
type CompanyStats struct {
	TotalItems    int // ítems registrados
	TotalUnits    int // suma de cantidades
	LowStock      int // quantity > 0 y <= umbral efectivo
	OutOfStock    int // quantity == 0
	ActiveMembers int // usuarios con active = true
	ActivityToday int // actividades desde la medianoche UTC
}

// StatsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type StatsRepository interface {
	// GetCompanyStats devuelve los agregados del tenant en una sola consulta.
	// Los conteos low/out siguen las mismas reglas excluyentes que el estado
	// derivado de Item: un ítem en cero no cuenta como low_stock.
	GetCompanyStats(ctx context.Context, companyID string) (*CompanyStats, error)
}
