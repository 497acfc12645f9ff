package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/controllers"
	"github.com/glowmedspa/medspa-backend/middleware"
)

// SetupServiceRoutes configures all service related routes
func SetupServiceRoutes(app *fiber.App, cfg config.Settings) {
	service := app.Group("/services", middleware.Protected(cfg.SecretKey))
	service.Get("/", controllers.GetAllServices)
	service.Post("/", controllers.CreateService)
}
