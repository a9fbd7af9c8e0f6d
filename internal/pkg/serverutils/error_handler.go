package serverutils

import (
	"errors"

	"dental-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ErrorHandlerMiddleware turns service errors into the three response kinds
// the API knows: 400 validation, 404 not found, 500 generic. Internal errors
// are logged with detail server-side and never leak to the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(errorResponse{
				Success: false,
				Errors:  validationErr.Errors,
			})
		}

		var notFoundErr *NotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{
				Success: false,
				Message: notFoundErr.Error(),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(errorResponse{
				Success: false,
				Message: fiberErr.Message,
			})
		}

		log.Error("http", "request failed", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Success: false,
			Message: "Internal server error",
		})
	}
}
