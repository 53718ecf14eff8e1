package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/application/inventory"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
)

// Máximo de ajustes por lote.
const maxBatchAdjustments = 100

// ActivityHandler maneja el feed de auditoría y los ajustes por lote.
type ActivityHandler struct {
	feed  *inventory.ActivityFeedUseCase
	batch *inventory.BatchAdjustUseCase
}

// NewActivityHandler construye el handler de actividades.
func NewActivityHandler(feed *inventory.ActivityFeedUseCase, batch *inventory.BatchAdjustUseCase) *ActivityHandler {
	return &ActivityHandler{feed: feed, batch: batch}
}

// List godoc
// @Summary      Feed de actividades
// @Description  Registro de auditoría de la company, más recientes primero. Incluye entradas de ítems y usuarios ya borrados.
// @Tags         activities
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ActivityListResponse
// @Security     BearerAuth
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.feed.ListCompany(GetCompanyID(c), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("activities: listar falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// ListByItem godoc
// @Summary      Historial de un ítem
// @Tags         activities
// @Produce      json
// @Param        id      path   string  true   "ID del ítem"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ActivityListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items/{id}/activities [get]
func (h *ActivityHandler) ListByItem(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.feed.ListItem(GetCompanyID(c), c.Params("id"), limit, offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		log.Error().Err(err).Msg("activities: historial de ítem falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// BatchAdjust godoc
// @Summary      Ajustes por lote (sesión de conteo)
// @Description  Aplica deltas relativos a varios ítems bajo un mismo título de sesión, todo o nada. Un ítem inexistente aborta el lote completo.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchAdjustRequest  true  "session_title + adjustments"
// @Success      200   {object}  dto.BatchAdjustResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/activities/batch [post]
func (h *ActivityHandler) BatchAdjust(c *fiber.Ctx) error {
	var in dto.BatchAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SessionTitle == "" || len(in.Adjustments) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "session_title y adjustments son requeridos"})
	}
	if len(in.Adjustments) > maxBatchAdjustments {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "máximo 100 ajustes por lote"})
	}
	out, err := h.batch.Apply(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lote inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "algún ítem del lote no existe; no se aplicó ningún ajuste"})
		}
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario del token no encontrado"})
		}
		log.Error().Err(err).Msg("activities: lote falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
