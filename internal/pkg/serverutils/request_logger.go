package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"thrapy-be/internal/pkg/logger"
)

// RequestLoggerMiddleware logs one line per request: method, path, status,
// latency.
func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		log.Info("http", "request", map[string]interface{}{
			"method":  ctx.Method(),
			"path":    ctx.Path(),
			"status":  ctx.Response().StatusCode(),
			"latency": time.Since(start).String(),
		})
		return err
	}
}
