package models

import (
	"gorm.io/gorm"
)

// AutomationEvent records an automation trigger. Events are only ever
// produced; nothing in the system consumes or transitions them.
type AutomationEvent struct {
	gorm.Model
	AccountID uint    `json:"account_id" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"not null"`
	Payload   JSONMap `json:"payload" gorm:"type:jsonb"`
	Status    string  `json:"status"`
}

func (e *AutomationEvent) BeforeCreate(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = "pending"
	}
	return nil
}
