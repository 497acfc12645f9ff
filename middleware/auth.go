package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
	"github.com/glowmedspa/medspa-backend/token"
)

// Protected verifies the bearer token and stores the caller's accountID and
// staffID in the request locals. The account must still exist; a token for a
// deleted account is as invalid as a tampered one.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, "Missing bearer token")
		}

		claims, err := token.Decode(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			if err == token.ErrTokenExpired {
				return unauthorized(c, "Token has expired")
			}
			return unauthorized(c, "Invalid or tampered token")
		}

		accountID, ok := claims["account_id"].(float64)
		if !ok {
			return unauthorized(c, "Invalid token claims")
		}
		staffID, ok := claims["staff_id"].(float64)
		if !ok {
			return unauthorized(c, "Invalid token claims")
		}

		var account models.Account
		if db.DB.First(&account, uint(accountID)).RowsAffected == 0 {
			return unauthorized(c, "Could not validate credentials")
		}

		c.Locals("accountID", uint(accountID))
		c.Locals("staffID", uint(staffID))

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}
