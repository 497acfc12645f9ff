package models

import (
	"time"
)

// Account is the tenant root. Every other resource belongs to exactly one
// account and is removed with it.
type Account struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Staff            []Staff           `json:"staff,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Services         []Service         `json:"services,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Clients          []Client          `json:"clients,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Appointments     []Appointment     `json:"appointments,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	AutomationEvents []AutomationEvent `json:"automation_events,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}
