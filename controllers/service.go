package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
	"github.com/glowmedspa/medspa-backend/redis"
)

const serviceCacheTTL = 5 * time.Minute

func serviceCacheKey(accountID uint) string {
	return fmt.Sprintf("services:%d", accountID)
}

// GetAllServices returns the caller's services, served from redis when the
// cache is warm.
func GetAllServices(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, serviceCacheKey(accountID)).Result(); err == nil {
			c.Set("Content-Type", "application/json")
			return c.SendString(cached)
		}
	}

	var services []models.Service
	if err := db.DB.Where("account_id = ?", accountID).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if redis.Client != nil {
		if body, err := json.Marshal(services); err == nil {
			redis.Client.Set(redis.Ctx, serviceCacheKey(accountID), body, serviceCacheTTL)
		}
	}

	return c.JSON(services)
}

// CreateService creates a new service for the caller's account
func CreateService(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if service.AccountID != accountID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Invalid account",
		})
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if redis.Client != nil {
		redis.Client.Del(redis.Ctx, serviceCacheKey(accountID))
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}
