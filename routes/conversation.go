package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/controllers"
	"github.com/glowmedspa/medspa-backend/middleware"
)

// SetupConversationRoutes configures all conversation related routes
func SetupConversationRoutes(app *fiber.App, cfg config.Settings) {
	conversation := app.Group("/conversations", middleware.Protected(cfg.SecretKey))
	conversation.Get("/", controllers.GetAllConversations)
	conversation.Post("/", controllers.CreateConversation)
	conversation.Post("/:id/messages", controllers.AddMessage)
}
