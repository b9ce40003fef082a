package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

// RequestLogger registra cada petición con zerolog: método, ruta, estado y duración.
// Las respuestas 5xx se registran como error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// el ErrorHandler de Fiber aún no escribió el estado
			_ = c.App().ErrorHandler(c, err)
		}
		status := c.Response().StatusCode()

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}
