package postgres

import (
	"context"
	"fmt"

	"github.com/stocktrackhq/stocktrack-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard del tenant.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetCompanyStats devuelve los agregados de la company en una sola consulta.
// low_stock usa el umbral efectivo (COALESCE del override del ítem y el
// default de la company) y excluye quantity = 0, que solo cuenta en out_of_stock.
// El corte de "hoy" es la medianoche UTC.
func (r *StatsRepo) GetCompanyStats(ctx context.Context, companyID string) (*repository.CompanyStats, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*)                  FROM items WHERE company_id = $1)                    AS total_items,
	    (SELECT COALESCE(SUM(quantity),0) FROM items WHERE company_id = $1)                    AS total_units,
	    (SELECT COUNT(*)
	       FROM items i
	       JOIN companies c ON c.id = i.company_id
	      WHERE i.company_id = $1
	        AND i.quantity > 0
	        AND COALESCE(i.low_stock_threshold, c.default_low_stock_threshold) IS NOT NULL
	        AND i.quantity <= COALESCE(i.low_stock_threshold, c.default_low_stock_threshold))  AS low_stock,
	    (SELECT COUNT(*) FROM items WHERE company_id = $1 AND quantity = 0)                    AS out_of_stock,
	    (SELECT COUNT(*) FROM users WHERE company_id = $1 AND active = true)                   AS active_members,
	    (SELECT COUNT(*)
	       FROM activities
	      WHERE company_id = $1
	        AND created_at >= date_trunc('day', now() AT TIME ZONE 'UTC') AT TIME ZONE 'UTC')  AS activity_today`

	var s repository.CompanyStats
	err := r.q.QueryRow(ctx, query, companyID).Scan(
		&s.TotalItems,
		&s.TotalUnits,
		&s.LowStock,
		&s.OutOfStock,
		&s.ActiveMembers,
		&s.ActivityToday,
	)
	if err != nil {
		return nil, fmt.Errorf("stats.GetCompanyStats: %w", err)
	}
	return &s, nil
}
