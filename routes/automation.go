package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/controllers"
	"github.com/glowmedspa/medspa-backend/middleware"
)

// SetupAutomationRoutes configures all automation event related routes
func SetupAutomationRoutes(app *fiber.App, cfg config.Settings) {
	automation := app.Group("/automations", middleware.Protected(cfg.SecretKey))
	automation.Get("/", controllers.GetAllAutomationEvents)
	automation.Post("/", controllers.CreateAutomationEvent)
}
