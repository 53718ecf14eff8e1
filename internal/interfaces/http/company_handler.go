package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/application/usecase"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
)

// CompanyHandler maneja las operaciones sobre la company del token.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Info godoc
// @Summary      Company actual
// @Description  La company del token con su conteo de miembros activos.
// @Tags         company
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/company [get]
func (h *CompanyHandler) Info(c *fiber.Ctx) error {
	out, err := h.uc.Info(GetCompanyID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "company no encontrada"})
		}
		log.Error().Err(err).Msg("company: info falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// UpdateThreshold godoc
// @Summary      Fijar umbral de stock bajo por defecto
// @Description  Umbral que heredan los ítems sin override propio; null lo limpia (ningún ítem sin override se marca low_stock).
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyThresholdRequest  true  "threshold (null = sin umbral)"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/company/threshold [put]
func (h *CompanyHandler) UpdateThreshold(c *fiber.Ctx) error {
	var in dto.UpdateCompanyThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateThreshold(GetCompanyID(c), in.Threshold)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold no puede ser negativo"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "company no encontrada"})
		}
		log.Error().Err(err).Msg("company: actualizar umbral falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Purge godoc
// @Summary      Eliminar company y todos sus datos
// @Description  Borra actividades, ítems, invitaciones, usuarios y la company en una sola transacción. El body debe repetir la frase exacta "DELETE <nombre de la company>". No hay deshacer.
// @Tags         company
// @Accept       json
// @Param        body  body  dto.DeleteCompanyRequest  true  "confirm: DELETE <nombre>"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/company [delete]
func (h *CompanyHandler) Purge(c *fiber.Ctx) error {
	var in dto.DeleteCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.Purge(c.Context(), GetCompanyID(c), in.Confirm)
	if err != nil {
		if err == domain.ErrConfirmationMismatch {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRMATION_MISMATCH", Message: "la frase de confirmación no coincide"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "company no encontrada"})
		}
		log.Error().Err(err).Msg("company: purga falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
