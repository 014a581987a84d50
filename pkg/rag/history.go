package rag

import (
	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/constant"
	"ai-chat-be/internal/entity"
	"ai-chat-be/pkg/llm"
)

// ToLLMMessages converts a stored history window into provider messages and
// appends the new user input as the final turn.
func ToLLMMessages(window []entity.SimpleMessage, chatInput string) ([]llm.Message, error) {
	messages := make([]llm.Message, 0, len(window)+1)
	for _, msg := range window {
		role, ok := constant.LLMRoleFor(msg.Role)
		if !ok {
			return nil, apperrors.NewDecode("stored message has unknown role "+msg.Role, nil)
		}
		messages = append(messages, llm.Message{
			Role:    role,
			Content: msg.Content,
		})
	}
	messages = append(messages, llm.Message{
		Role:    constant.LLMRoleUser,
		Content: chatInput,
	})
	return messages, nil
}
