package validate

import (
	"strings"

	"dinebook/constants"
	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
)

// GetById rejects blank path ids and stores the trimmed id under "inputId".
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params(key))
		if id == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_REQUEST_BODY, nil)
		}

		c.Locals("inputId", id)
		return c.Next()
	}
}
