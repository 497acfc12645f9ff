package models

import (
	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	AccountID   uint    `json:"account_id" gorm:"not null;index"`
	Email       *string `json:"email" gorm:"unique"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`

	Appointments  []Appointment  `json:"appointments,omitempty" gorm:"foreignKey:ClientID"`
	Conversations []Conversation `json:"conversations,omitempty" gorm:"foreignKey:ClientID"`
}
