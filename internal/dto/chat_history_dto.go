package dto

import (
	"time"

	"ai-chat-be/internal/entity"
)

type AppendChatHistoryRequest struct {
	ChatSession string `json:"chat_session" validate:"required,uuid4"`
	Role        string `json:"role" validate:"required,oneof=system human ai"`
	Content     string `json:"content" validate:"required"`
}

type ChatMessageDTO struct {
	Id            int64     `json:"id"`
	ChatSessionId string    `json:"chat_session_id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

type GetChatHistoryResponse struct {
	Messages []entity.SimpleMessage `json:"messages"`
}
