package handler

import (
	"dinebook/model"
	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetAvailability(c *fiber.Ctx) error {
	query := c.Locals("query").(model.AvailabilityQuery)

	availability, err := h.bookings.GetAvailability(c.UserContext(), query.RestaurantID, query.Date)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, availability)
}
