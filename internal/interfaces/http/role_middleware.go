package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stocktrackhq/stocktrack-api/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que exige que el rol del token esté
// en la lista de roles permitidos. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalRole).
//
// Comportamiento:
//   - 401 MISSING_ROLE → el token no trae claim de rol (tokens anteriores al claim).
//   - 403 FORBIDDEN    → rol presente pero no autorizado para la ruta.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "rol sin permiso para esta operación",
		})
	}
}
