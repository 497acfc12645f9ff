package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
)

// GetAllAppointments returns the caller's appointments
func GetAllAppointments(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var appointments []models.Appointment
	if err := db.DB.Where("account_id = ?", accountID).Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(appointments)
}

// CreateAppointment creates a new appointment for the caller's account.
// There is no overlap checking; double-booking the same slot is allowed.
func CreateAppointment(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	appointment := new(models.Appointment)
	if err := c.BodyParser(appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if appointment.AccountID != accountID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Invalid account",
		})
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}
