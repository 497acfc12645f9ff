package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
)

// GetAllAutomationEvents returns the caller's automation events
func GetAllAutomationEvents(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var events []models.AutomationEvent
	if err := db.DB.Where("account_id = ?", accountID).Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(events)
}

// CreateAutomationEvent records a new automation event
func CreateAutomationEvent(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	event := new(models.AutomationEvent)
	if err := c.BodyParser(event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if event.AccountID != accountID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Invalid account",
		})
	}

	if err := db.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}
