package utils

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// MessageResponse is SuccessResponse with a human-readable message alongside the data.
func MessageResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}
