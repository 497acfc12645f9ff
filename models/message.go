package models

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	ConversationID uint    `json:"conversation_id" gorm:"not null;index"`
	Sender         string  `json:"sender"`
	Content        string  `json:"content"`
	ToolInvocation JSONMap `json:"tool_invocation" gorm:"type:jsonb"`
}
