package models

import (
	"time"
)

type Staff struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	AccountID    uint      `json:"account_id" gorm:"not null;index"`
	Email        string    `json:"email" gorm:"unique;not null"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:StaffID"`
}
