package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/controllers"
	"github.com/glowmedspa/medspa-backend/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, cfg config.Settings) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/signup", controllers.Signup(cfg))
	auth.Post("/login", controllers.Login(cfg))

	// Protected routes
	auth.Get("/me", middleware.Protected(cfg.SecretKey), controllers.Me)
}
