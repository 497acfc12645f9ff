package chat

import (
	"github.com/gofiber/fiber/v2"
)

type chatRequest struct {
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// NewServer builds the chat service HTTP app.
func NewServer(agent *Agent) *fiber.App {
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/chat", func(c *fiber.Ctx) error {
		req := new(chatRequest)
		if err := c.BodyParser(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}

		reply, err := agent.Run(c.Context(), req.Messages)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(chatResponse{Reply: reply})
	})

	return app
}
