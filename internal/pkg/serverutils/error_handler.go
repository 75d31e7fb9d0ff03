package serverutils

import (
	"errors"

	"twin-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts the error taxonomy into JSON responses:
// validation errors to 400, unknown sessions to 404, completion failures to
// 500 with the provider detail, anything else to a generic 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Message))
		}

		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(service.ErrSessionNotFound.Error()))
		}

		var completionErr *service.CompletionError
		if errors.As(err, &completionErr) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(completionErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
