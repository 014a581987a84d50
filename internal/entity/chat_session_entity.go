package entity

import (
	"time"
)

type ChatSession struct {
	Id            int64
	UserId        string
	ChatSessionId string
	CreatedAt     time.Time
}
