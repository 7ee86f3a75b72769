package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"mentorhub/cron"
	"mentorhub/db"
	"mentorhub/redis"
	"mentorhub/routes"
)

func main() {
	app := fiber.New()

	if os.Getenv("MIGRATE") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("MentorHub API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupMentorRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupSessionRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	app.Listen(":" + port)
}
