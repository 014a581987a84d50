package mapper

import (
	"encoding/json"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type DocumentChunkMapper struct{}

func NewDocumentChunkMapper() *DocumentChunkMapper {
	return &DocumentChunkMapper{}
}

func (m *DocumentChunkMapper) ToEntity(c *model.DocumentChunk) *entity.DocumentChunk {
	if c == nil {
		return nil
	}

	var metadata map[string]string
	if len(c.Metadata) > 0 {
		// Metadata written by this service is always a flat string map;
		// anything else is ignored rather than failing the read.
		_ = json.Unmarshal(c.Metadata, &metadata)
	}

	return &entity.DocumentChunk{
		Id:             c.Id,
		CollectionName: c.CollectionName,
		Content:        c.Content,
		Metadata:       metadata,
		EmbeddingValue: c.EmbeddingValue.Slice(),
		ChunkIndex:     c.ChunkIndex,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *DocumentChunkMapper) ToModel(c *entity.DocumentChunk) *model.DocumentChunk {
	if c == nil {
		return nil
	}

	var metadata datatypes.JSON
	if len(c.Metadata) > 0 {
		raw, err := json.Marshal(c.Metadata)
		if err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.DocumentChunk{
		Id:             c.Id,
		CollectionName: c.CollectionName,
		Content:        c.Content,
		Metadata:       metadata,
		EmbeddingValue: pgvector.NewVector(c.EmbeddingValue),
		ChunkIndex:     c.ChunkIndex,
		CreatedAt:      c.CreatedAt,
	}
}
