package routes

import (
	"github.com/gofiber/fiber/v2"

	"mentorhub/controllers"
	"mentorhub/middleware"
)

// SetupSessionRoutes configures the video session room routes
func SetupSessionRoutes(app *fiber.App) {
	sessions := app.Group("/sessions", middleware.Protected())

	sessions.Post("/:id/join", controllers.JoinSession)
	sessions.Post("/:id/leave", controllers.LeaveSession)
}
