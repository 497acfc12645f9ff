package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	AccountID       uint   `json:"account_id" gorm:"not null;index"`
	Name            string `json:"name" gorm:"not null"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
}
