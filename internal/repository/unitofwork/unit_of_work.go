package unitofwork

import (
	"context"

	"ai-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	DocumentChunkRepository() contract.DocumentChunkRepository
}
