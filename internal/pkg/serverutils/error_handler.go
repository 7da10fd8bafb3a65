package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"thrapy-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware converts errors returned by handlers into the JSON
// envelope. AppErrors keep their status; anything else becomes a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "Internal server error"
		if appErr, ok := apperror.From(err); ok {
			status = appErr.Status
			message = appErr.Message
		} else if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"code":    status,
			"message": message,
		})
	}
}
