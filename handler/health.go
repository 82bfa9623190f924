package handler

import (
	"context"
	"time"

	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
)

// Health reports 503 when ping fails. A nil ping always reports ok.
func Health(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unavailable", err)
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
