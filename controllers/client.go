package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
)

// GetAllClients returns the caller's clients
func GetAllClients(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var clients []models.Client
	if err := db.DB.Where("account_id = ?", accountID).Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(clients)
}

// GetClient returns one client scoped to the caller's account
func GetClient(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)
	id := c.Params("id")

	var client models.Client
	if db.DB.Where("id = ? AND account_id = ?", id, accountID).First(&client).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	return c.JSON(client)
}

// CreateClient creates a new client for the caller's account
func CreateClient(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	client := new(models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if client.AccountID != accountID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Invalid account",
		})
	}

	if err := db.DB.Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}
