package dto

import (
	"time"
)

type CreateChatSessionRequest struct {
	UserId string `json:"user_id" validate:"required"`
}

type ChatSessionDTO struct {
	Id            int64     `json:"id"`
	UserId        string    `json:"user_id"`
	ChatSessionId string    `json:"chat_session_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type GetChatSessionsResponse struct {
	Message string           `json:"message"`
	Data    []ChatSessionDTO `json:"data"`
}

type DeleteChatSessionRequest struct {
	UserId        string `json:"user_id" validate:"required"`
	ChatSessionId string `json:"chat_session_id" validate:"required,uuid4"`
}

type DeleteChatSessionResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"data"`
}
