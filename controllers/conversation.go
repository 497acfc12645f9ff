package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/agent"
	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
)

// GetAllConversations returns the caller's conversations
func GetAllConversations(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var conversations []models.Conversation
	if err := db.DB.Where("account_id = ?", accountID).Find(&conversations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(conversations)
}

// CreateConversation starts a new conversation for the caller's account
func CreateConversation(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	conversation := new(models.Conversation)
	if err := c.BodyParser(conversation); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if conversation.AccountID != accountID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Invalid account",
		})
	}

	if err := db.DB.Create(&conversation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(conversation)
}

// AddMessage appends a message to a conversation and advances its agent
// state. Concurrent writers race on last_agent_state with last-write-wins;
// the classifier is stateless so any interleaving yields a valid state.
func AddMessage(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	conversationID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation id",
		})
	}

	var conversation models.Conversation
	if db.DB.Where("id = ? AND account_id = ?", conversationID, accountID).
		First(&conversation).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}

	message := new(models.Message)
	if err := c.BodyParser(message); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if message.ConversationID != conversation.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Conversation mismatch",
		})
	}

	next := agent.NextState(agent.State(conversation.LastAgentState), message.Content)
	conversation.LastAgentState = string(next)

	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err := db.DB.Save(&conversation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}
