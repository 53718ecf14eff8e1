package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
	"github.com/stocktrackhq/stocktrack-api/internal/application/invite"
	"github.com/stocktrackhq/stocktrack-api/internal/domain"
)

// InviteHandler maneja el ciclo de vida de invitaciones. Emitir y listar son
// rutas admin; previsualizar y canjear son públicas (el token es la credencial).
type InviteHandler struct {
	uc *invite.InviteUseCase
}

// NewInviteHandler construye el handler de invitaciones.
func NewInviteHandler(uc *invite.InviteUseCase) *InviteHandler {
	return &InviteHandler{uc: uc}
}

// Issue godoc
// @Summary      Emitir invitación
// @Description  Genera un token de invitación con vigencia de 7 días. Rechaza si la company llegó a su tope de usuarios del plan.
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInviteRequest  true  "role: admin | user"
// @Success      201   {object}  dto.InviteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/invites [post]
func (h *InviteHandler) Issue(c *fiber.Ctx) error {
	var in dto.CreateInviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Issue(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role debe ser admin o user"})
		}
		if err == domain.ErrUserLimitReached {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USER_LIMIT", Message: "la company alcanzó el máximo de usuarios de su plan"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "company no encontrada"})
		}
		log.Error().Err(err).Msg("invites: emitir falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar invitaciones
// @Description  Invitaciones de la company con su estado derivado (pending/used/expired).
// @Tags         invites
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.InviteListResponse
// @Security     BearerAuth
// @Router       /api/invites [get]
func (h *InviteHandler) List(c *fiber.Ctx) error {
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
	out, err := h.uc.List(GetCompanyID(c), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("invites: listar falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Previsualizar invitación
// @Description  Qué está aceptando el invitado: company, quién invita, rol y vencimiento. Inexistente, usada o vencida responden igual.
// @Tags         invites
// @Produce      json
// @Param        token  path  string  true  "Token de invitación"
// @Success      200    {object}  dto.InvitePreviewResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/invites/{token} [get]
func (h *InviteHandler) Preview(c *fiber.Ctx) error {
	out, err := h.uc.Preview(c.Params("token"))
	if err != nil {
		if err == domain.ErrInviteInvalid {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVITE_INVALID", Message: "invitación no encontrada o expirada"})
		}
		log.Error().Err(err).Msg("invites: previsualizar falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Canjear invitación
// @Description  Crea el usuario en la company de la invitación con el rol prometido y devuelve la sesión. Cada invitación se canjea exactamente una vez.
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de invitación"
// @Param        body   body  dto.AcceptInviteRequest  true  "name, email, password"
// @Success      201    {object}  dto.SessionResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/invites/{token}/accept [post]
func (h *InviteHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptInviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.Redeem(c.Context(), c.Params("token"), in)
	if err != nil {
		if err == domain.ErrInviteInvalid {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVITE_INVALID", Message: "invitación no encontrada o expirada"})
		}
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		if err == domain.ErrUserLimitReached {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USER_LIMIT", Message: "la company alcanzó el máximo de usuarios de su plan"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del canje inválidos"})
		}
		log.Error().Err(err).Msg("invites: canje falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
