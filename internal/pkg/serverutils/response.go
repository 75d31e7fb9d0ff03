package serverutils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the flat error body every failure path returns.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{
		"error": message,
	}
}
