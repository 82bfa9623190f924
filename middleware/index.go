package middleware

import (
	"errors"
	"slices"
	"strings"

	"dinebook/constants"
	"dinebook/helper"
	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected requires a valid access token, from the access_token cookie or an
// "Authorization: Bearer" header, and stores the caller claim in the request locals.
func Protected(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")
		if token == "" {
			auth := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			}
		}
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		claim, err := helper.Authenticate(token, secret)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals(helper.ClaimKey, claim)
		return c.Next()
	}
}

// RoleRequired must run after Protected.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := helper.GetClaim(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, nil)
		}
		if !slices.Contains(roles, claim.Role) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_ROLE, nil)
		}
		return c.Next()
	}
}
