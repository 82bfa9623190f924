package helper

import (
	"dinebook/model"

	"github.com/gofiber/fiber/v2"
)

const ClaimKey = "claim"

// GetClaim returns the caller identity stored by middleware.Protected.
func GetClaim(c *fiber.Ctx) (model.TokenClaim, bool) {
	claim, ok := c.Locals(ClaimKey).(model.TokenClaim)
	return claim, ok && claim.UserId != ""
}
