package handler

import (
	"errors"
	"log"

	"dinebook/constants"
	"dinebook/service"
	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	bookings *service.BookingService
}

func New(bookings *service.BookingService) *Handler {
	return &Handler{bookings: bookings}
}

// writeError maps service error kinds onto HTTP statuses.
func writeError(c *fiber.Ctx, err error) error {
	message := service.Message(err)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, service.ErrInvalidInput)
	case errors.Is(err, service.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, message, service.ErrNotFound)
	case errors.Is(err, service.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, message, service.ErrConflict)
	case errors.Is(err, service.ErrUnauthorized):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, message, service.ErrUnauthorized)
	case errors.Is(err, service.ErrTransient):
		c.Set(fiber.HeaderRetryAfter, "1")
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_TRANSIENT, service.ErrTransient)
	default:
		log.Printf("handler: %s %s: %v", c.Method(), c.Path(), err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
}
