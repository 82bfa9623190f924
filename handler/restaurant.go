package handler

import (
	"dinebook/model"
	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetRestaurantById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(string)

	restaurant, err := h.bookings.GetRestaurant(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewRestaurantResponse(restaurant))
}
