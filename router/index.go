package router

import (
	"context"

	"dinebook/constants"
	"dinebook/handler"
	"dinebook/middleware"
	"dinebook/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type Deps struct {
	Handler   *handler.Handler
	JWTSecret []byte
	// Ping checks the database for /health. Optional.
	Ping func(ctx context.Context) error
	// DisableLogger turns off request logging, for tests.
	DisableLogger bool
}

func SetupRoutes(app *fiber.App, deps Deps) {
	h := deps.Handler
	protected := middleware.Protected(deps.JWTSecret)

	app.Get("/health", handler.Health(deps.Ping))

	api := app.Group("/api")
	if !deps.DisableLogger {
		api.Use(logger.New())
	}
	v1 := api.Group("/v1")

	restaurants := v1.Group("/restaurants")
	restaurants.Get("/:restaurantId", validate.GetById("restaurantId"), h.GetRestaurantById)

	bookings := v1.Group("/bookings")
	bookings.Get("/availability", validate.AvailabilityQuery(), h.GetAvailability)
	bookings.Get("/stats", protected, h.GetBookingStats)
	bookings.Get("/", protected, validate.BookingFilter(), h.GetBookings)
	bookings.Post("/", protected, middleware.RoleRequired(constants.ROLE_CUSTOMER), validate.CreateBooking(), h.CreateBooking)
	bookings.Get("/:bookingId", protected, validate.GetById("bookingId"), h.GetBookingById)
	bookings.Delete("/:bookingId", protected, validate.GetById("bookingId"), h.CancelBooking)

	ws := app.Group("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/availability/:restaurantId/:date", websocket.New(h.LiveAvailability))
}
