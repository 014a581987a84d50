package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentChunk struct {
	Id             uuid.UUID
	CollectionName string
	Content        string
	Metadata       map[string]string
	EmbeddingValue []float32
	ChunkIndex     int
	CreatedAt      time.Time
}

// ScoredDocumentChunk pairs a chunk with its cosine similarity to a query.
type ScoredDocumentChunk struct {
	Chunk      *DocumentChunk
	Similarity float64
}
