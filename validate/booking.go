package validate

import (
	"errors"

	"dinebook/constants"
	"dinebook/helper"
	"dinebook/model"
	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_REQUEST_BODY, err)
		}
		if err := helper.Validator.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, helper.ValidationMessage(err), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func AvailabilityQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query model.AvailabilityQuery
		if err := c.QueryParser(&query); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_QUERY, err)
		}
		if err := helper.Validator.Struct(query); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, helper.ValidationMessage(err), err)
		}
		c.Locals("query", query)
		return c.Next()
	}
}

func BookingFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.BookingFilter
		if err := c.QueryParser(&filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_QUERY, err)
		}
		if err := helper.Validator.Struct(filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, helper.ValidationMessage(err), err)
		}
		if filter.DateFrom != "" && filter.DateTo != "" && filter.DateFrom > filter.DateTo {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "dateFrom must not be after dateTo", errors.New("invalid date range"))
		}
		c.Locals("query", filter)
		return c.Next()
	}
}
