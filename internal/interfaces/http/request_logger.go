package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/superandes-api/pkg/logger"
)

// RequestLogger asigna un id de correlación a cada petición y registra
// método, ruta, status y latencia con el logger estructurado.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("X-Request-Id", reqID)

		start := time.Now()
		err := c.Next()

		evt := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
