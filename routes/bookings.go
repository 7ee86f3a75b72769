package routes

import (
	"github.com/gofiber/fiber/v2"

	"mentorhub/controllers"
	"mentorhub/middleware"
)

// SetupBookingRoutes configures the session booking routes
func SetupBookingRoutes(app *fiber.App) {
	bookings := app.Group("/bookings", middleware.Protected())

	bookings.Get("/", controllers.ListBookings)
	bookings.Post("/", middleware.RequireRole("mentee"), controllers.CreateBooking)
	bookings.Get("/:id", controllers.GetBooking)
	bookings.Patch("/:id/status", controllers.UpdateBookingStatus)

	app.Get("/dashboard", middleware.Protected(), controllers.Dashboard)
}
