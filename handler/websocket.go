package handler

import (
	"context"
	"log"

	"dinebook/constants"
	"dinebook/service"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// LiveAvailability streams a restaurant day's availability. It sends the current
// slots on connect and again after every committed booking change for that day.
func (h *Handler) LiveAvailability(c *websocket.Conn) {
	restaurantID := c.Params("restaurantId")
	date := c.Params("date")

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		c.Close()
	}()

	changes, unsubscribe, err := h.bookings.Feed().Subscribe(ctx, restaurantID, date)
	if err != nil {
		log.Printf("ws: subscribe %s %s: %v", restaurantID, date, err)
		return
	}
	defer unsubscribe()

	push := func() bool {
		availability, err := h.bookings.GetAvailability(ctx, restaurantID, date)
		if err != nil {
			message := service.Message(err)
			if message == "" {
				message = constants.ERROR_INTERNAL_ERROR
			}
			_ = c.WriteJSON(fiber.Map{"message": message})
			return false
		}
		return c.WriteJSON(availability) == nil
	}
	if !push() {
		return
	}

	// The client sends nothing; reading only detects the disconnect.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case _, ok := <-changes:
			if !ok || !push() {
				return
			}
		}
	}
}
