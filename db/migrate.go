package db

import (
	"fmt"
	"log"

	"github.com/glowmedspa/medspa-backend/models"
)

// Migrate runs AutoMigrate over the full schema. Call after Init.
func Migrate() {
	err := DB.AutoMigrate(
		&models.Account{},
		&models.Staff{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.Conversation{},
		&models.Message{},
		&models.AutomationEvent{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
