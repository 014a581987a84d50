package model

import (
	"time"
)

type ChatSession struct {
	Id            int64     `gorm:"primaryKey;autoIncrement"`
	UserId        string    `gorm:"type:text;not null;index"`
	ChatSessionId string    `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (ChatSession) TableName() string {
	return "user_chat_sessions"
}
