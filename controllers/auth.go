package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
	"github.com/glowmedspa/medspa-backend/token"
	"github.com/glowmedspa/medspa-backend/utils"
)

const defaultAccountName = "Glow MedSpa"

// SignupInput carries the fields for staff registration. AccountID is
// optional; when it names an existing account the new staff member joins it,
// otherwise a fresh account is created.
type SignupInput struct {
	AccountID uint   `json:"account_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

// Signup creates a new account and staff member and returns a token
func Signup(cfg config.Settings) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(SignupInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}

		if input.Email == "" || input.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}

		var existingStaff models.Staff
		if db.DB.Where("email = ?", input.Email).First(&existingStaff).RowsAffected > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email already registered",
			})
		}

		var account models.Account
		if input.AccountID != 0 {
			db.DB.First(&account, input.AccountID)
		}
		if account.ID == 0 {
			account = models.Account{Name: defaultAccountName}
			if err := db.DB.Create(&account).Error; err != nil {
				log.Printf("Error creating account: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to create account",
				})
			}
		}

		passwordHash, err := utils.HashPassword(input.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}

		staff := models.Staff{
			AccountID:    account.ID,
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Role:         input.Role,
			PasswordHash: passwordHash,
		}
		if err := db.DB.Create(&staff).Error; err != nil {
			log.Printf("Error creating staff: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create staff member",
			})
		}

		tok, err := createAccessToken(account.ID, staff.ID, cfg.SecretKey)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate token",
			})
		}

		return c.JSON(fiber.Map{
			"access_token": tok,
			"token_type":   "bearer",
		})
	}
}

// Login authenticates a staff member and returns a token
func Login(cfg config.Settings) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginInput struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		input := new(LoginInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}

		var staff models.Staff
		if db.DB.Where("email = ?", input.Email).First(&staff).RowsAffected == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}

		if !utils.VerifyPassword(input.Password, staff.PasswordHash) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}

		tok, err := createAccessToken(staff.AccountID, staff.ID, cfg.SecretKey)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate token",
			})
		}

		return c.JSON(fiber.Map{
			"access_token": tok,
			"token_type":   "bearer",
		})
	}
}

// Me returns the current staff member's profile
func Me(c *fiber.Ctx) error {
	staffID := c.Locals("staffID").(uint)

	var staff models.Staff
	if db.DB.First(&staff, staffID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff not found",
		})
	}

	return c.JSON(fiber.Map{
		"id":         staff.ID,
		"email":      staff.Email,
		"first_name": staff.FirstName,
		"last_name":  staff.LastName,
		"role":       staff.Role,
	})
}

func createAccessToken(accountID, staffID uint, secret string) (string, error) {
	claims := map[string]any{
		"account_id": accountID,
		"staff_id":   staffID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	return token.Encode(claims, secret)
}
