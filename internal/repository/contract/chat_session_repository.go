package contract

import (
	"context"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	// DeleteByUserAndSession removes every row matching both keys and
	// returns the number of rows deleted (zero when nothing matched).
	DeleteByUserAndSession(ctx context.Context, userId, chatSessionId string) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	DistinctUserIds(ctx context.Context) ([]string, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
