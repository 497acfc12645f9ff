package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/cron"
	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/redis"
	"github.com/glowmedspa/medspa-backend/routes"
)

func main() {
	cfg := config.New()

	db.Init(cfg)
	db.Migrate()
	redis.Init(cfg)
	cron.StartReminderJobs(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins(),
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupAuthRoutes(app, cfg)
	routes.SetupClientRoutes(app, cfg)
	routes.SetupServiceRoutes(app, cfg)
	routes.SetupAppointmentRoutes(app, cfg)
	routes.SetupConversationRoutes(app, cfg)
	routes.SetupAutomationRoutes(app, cfg)

	log.Fatal(app.Listen(":" + cfg.Port))
}
