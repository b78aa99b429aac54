package serverutils

import (
	"mentorlink-be/internal/pkg/apperror"
	"mentorlink-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors escaping the handlers into the
// response envelope. Internal and upstream failures are logged with detail
// server-side and answered with a generic message.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		switch apperror.KindOf(err) {
		case apperror.KindValidation, apperror.KindConflict:
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, err.Error()))
		case apperror.KindAuth:
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, err.Error()))
		case apperror.KindNotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(404, err.Error()))
		default:
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Internal server error"))
		}
	}
}
