package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stocktrackhq/stocktrack-api/pkg/logger"
)

// LoggerMiddleware registra cada petición con método, ruta, status y duración.
// Corre alrededor del handler: el status es el de la respuesta ya escrita,
// porque los handlers convierten sus errores en JSON antes de retornar.
func LoggerMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= 500 {
			evt = log.Error()
		} else if status >= 400 {
			evt = log.Warn()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration_ms", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}
