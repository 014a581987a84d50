package entity

import (
	"time"
)

type ChatMessage struct {
	Id            int64
	ChatSessionId string
	Role          string
	Content       string
	CreatedAt     time.Time
}

// SimpleMessage is the windowed, role-tagged view of a stored message that
// callers receive from the history store.
type SimpleMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
