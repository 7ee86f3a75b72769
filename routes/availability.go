package routes

import (
	"github.com/gofiber/fiber/v2"

	"mentorhub/controllers"
	"mentorhub/middleware"
)

// SetupAvailabilityRoutes configures the mentor weekly schedule routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability", middleware.Protected(), middleware.RequireRole("mentor"))

	availability.Get("/", controllers.GetAvailability)
	availability.Put("/", controllers.SetAvailability)
}
