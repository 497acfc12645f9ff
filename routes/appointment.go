package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/controllers"
	"github.com/glowmedspa/medspa-backend/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, cfg config.Settings) {
	appointment := app.Group("/appointments", middleware.Protected(cfg.SecretKey))
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Post("/", controllers.CreateAppointment)
}
