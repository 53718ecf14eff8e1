package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/application/usecase"
)

// StatsHandler maneja los agregados del dashboard.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler de estadísticas.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Description  Totales de ítems y unidades, stock bajo y agotado (excluyentes), miembros activos y actividad desde la medianoche UTC.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Security     BearerAuth
// @Router       /api/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context(), GetCompanyID(c))
	if err != nil {
		log.Error().Err(err).Msg("stats: consulta falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
