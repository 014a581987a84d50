package contract

import (
	"context"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"
)

type DocumentChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar returns the chunks of one collection closest to the query
	// embedding by cosine distance, best first.
	SearchSimilar(ctx context.Context, collectionName string, embedding []float32, limit int) ([]*entity.ScoredDocumentChunk, error)
}
