package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/controllers"
	"github.com/glowmedspa/medspa-backend/middleware"
)

// SetupClientRoutes configures all client related routes
func SetupClientRoutes(app *fiber.App, cfg config.Settings) {
	client := app.Group("/clients", middleware.Protected(cfg.SecretKey))
	client.Get("/", controllers.GetAllClients)
	client.Get("/:id", controllers.GetClient)
	client.Post("/", controllers.CreateClient)
}
