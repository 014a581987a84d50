package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type DocumentChunk struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CollectionName string          `gorm:"type:text;not null;index"`
	Content        string          `gorm:"type:text;not null"`
	Metadata       datatypes.JSON  `gorm:"type:jsonb"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 and nomic-embed-text are 768-dim
	ChunkIndex     int             `gorm:"default:0"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
