package models

import (
	"gorm.io/gorm"
)

// Conversation tracks a client's booking dialogue. LastAgentState is the only
// column the API ever mutates; it is overwritten on every new message.
type Conversation struct {
	gorm.Model
	AccountID      uint    `json:"account_id" gorm:"not null;index"`
	ClientID       uint    `json:"client_id" gorm:"not null"`
	AppointmentID  *uint   `json:"appointment_id"`
	Topic          *string `json:"topic"`
	LastAgentState string  `json:"last_agent_state"`

	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}
