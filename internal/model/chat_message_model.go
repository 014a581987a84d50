package model

import (
	"time"
)

type ChatMessage struct {
	Id            int64  `gorm:"primaryKey;autoIncrement"`
	ChatSessionId string `gorm:"type:uuid;not null;index"`
	Role          string `gorm:"type:varchar(16);not null"`
	Content       string `gorm:"type:text;not null"`
	CreatedAt     time.Time

	// Belongs-to association so AutoMigrate enforces referential integrity on
	// chat_session_id instead of leaving it a free string.
	ChatSession *ChatSession `gorm:"foreignKey:ChatSessionId;references:ChatSessionId;constraint:OnDelete:CASCADE"`
}

func (ChatMessage) TableName() string {
	return "chat_histories"
}
