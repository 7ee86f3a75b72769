package routes

import (
	"github.com/gofiber/fiber/v2"

	"mentorhub/controllers"
	"mentorhub/middleware"
)

// SetupProfileRoutes configures profile and skill management routes
func SetupProfileRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.Protected())

	profile.Get("/", controllers.GetProfile)
	profile.Patch("/", controllers.UpdateProfile)
	profile.Post("/avatar", controllers.UploadAvatar)

	profile.Get("/skills", middleware.RequireRole("mentor"), controllers.ListSkills)
	profile.Post("/skills", middleware.RequireRole("mentor"), controllers.AddSkill)
	profile.Delete("/skills/:id", middleware.RequireRole("mentor"), controllers.RemoveSkill)
}
