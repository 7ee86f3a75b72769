package routes

import (
	"github.com/gofiber/fiber/v2"

	"mentorhub/controllers"
	"mentorhub/middleware"
)

// SetupMentorRoutes configures the mentor directory and slot listing routes
func SetupMentorRoutes(app *fiber.App) {
	mentors := app.Group("/mentors", middleware.Protected())

	mentors.Get("/", controllers.ListMentors)
	mentors.Get("/:id", controllers.GetMentor)
	mentors.Get("/:id/slots", controllers.GetMentorSlots)
}
