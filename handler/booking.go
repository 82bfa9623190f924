package handler

import (
	"dinebook/constants"
	"dinebook/helper"
	"dinebook/model"
	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	claim, _ := helper.GetClaim(c)
	input := c.Locals("input").(model.CreateBookingInput)
	input.CustomerID = claim.UserId

	booking, err := h.bookings.CreateBooking(c.UserContext(), input)
	if err != nil {
		return writeError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, constants.BOOKING_CREATED, model.NewBookingResponse(booking))
}

func (h *Handler) GetBookingById(c *fiber.Ctx) error {
	claim, _ := helper.GetClaim(c)
	id := c.Locals("inputId").(string)

	booking, err := h.bookings.GetBooking(c.UserContext(), id, claim.UserId)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *fiber.Ctx) error {
	claim, _ := helper.GetClaim(c)
	id := c.Locals("inputId").(string)

	booking, err := h.bookings.CancelBooking(c.UserContext(), id, claim.UserId)
	if err != nil {
		return writeError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.BOOKING_CANCELLED, model.NewBookingResponse(booking))
}

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	claim, _ := helper.GetClaim(c)
	filter := c.Locals("query").(model.BookingFilter)

	bookings, err := h.bookings.ListBookings(c.UserContext(), claim.UserId, filter)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookings": model.NewBookingResponses(bookings),
		"total":    len(bookings),
	})
}

func (h *Handler) GetBookingStats(c *fiber.Ctx) error {
	claim, _ := helper.GetClaim(c)

	stats, err := h.bookings.GetStats(c.UserContext(), claim.UserId)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
