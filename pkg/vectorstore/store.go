// Package vectorstore manages per-upload collections of embedded chunks in
// the document_chunks table.
package vectorstore

import (
	"context"
	"fmt"
	"time"

	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"
	"ai-chat-be/pkg/embedding"
	"ai-chat-be/pkg/splitter"

	"github.com/google/uuid"
)

const defaultTopK = 4

type Store struct {
	uowFactory unitofwork.RepositoryFactory
	embedder   embedding.EmbeddingProvider

	// readiness poll knobs, overridable in tests
	readyAttempts int
	readyBaseWait time.Duration
}

func NewStore(uowFactory unitofwork.RepositoryFactory, embedder embedding.EmbeddingProvider) *Store {
	return &Store{
		uowFactory:    uowFactory,
		embedder:      embedder,
		readyAttempts: 5,
		readyBaseWait: 50 * time.Millisecond,
	}
}

// Retriever is a handle bound to one collection.
type Retriever struct {
	store          *Store
	CollectionName string
	TopK           int
}

// CollectionNameFor derives a collection name unique across uploads of the
// same namespace.
func CollectionNameFor(namespace string) string {
	return fmt.Sprintf("%s_%d", namespace, time.Now().UnixNano())
}

// CreateCollection embeds the chunks, bulk-inserts them under a fresh
// collection name, waits until the rows are readable, and returns a
// retriever bound to the new collection.
func (s *Store) CreateCollection(ctx context.Context, namespace string, chunks []splitter.Chunk) (*Retriever, error) {
	if len(chunks) == 0 {
		return nil, apperrors.NewIngestion("document produced no chunks", nil)
	}

	collectionName := CollectionNameFor(namespace)

	rows := make([]*entity.DocumentChunk, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := s.embedder.Generate(ctx, chunk.Content, embedding.TaskRetrievalDocument)
		if err != nil {
			return nil, apperrors.NewIngestion(fmt.Sprintf("embed chunk %d", i), err)
		}
		rows = append(rows, &entity.DocumentChunk{
			Id:             uuid.New(),
			CollectionName: collectionName,
			Content:        chunk.Content,
			Metadata:       chunk.Metadata,
			EmbeddingValue: res.Embedding.Values,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.NewStorage("begin ingestion transaction", err)
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().CreateBulk(ctx, rows); err != nil {
		return nil, apperrors.NewStorage("store document chunks", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperrors.NewStorage("commit ingestion transaction", err)
	}

	if err := s.awaitReady(ctx, collectionName, int64(len(rows))); err != nil {
		return nil, err
	}

	return &Retriever{
		store:          s,
		CollectionName: collectionName,
		TopK:           defaultTopK,
	}, nil
}

// awaitReady polls the collection count with bounded exponential backoff
// until every inserted row is visible.
func (s *Store) awaitReady(ctx context.Context, collectionName string, want int64) error {
	wait := s.readyBaseWait
	for attempt := 0; attempt < s.readyAttempts; attempt++ {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		count, err := uow.DocumentChunkRepository().Count(ctx,
			specification.ByCollectionName{CollectionName: collectionName},
		)
		if err != nil {
			return apperrors.NewStorage("poll collection readiness", err)
		}
		if count >= want {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
	return apperrors.NewIngestion(fmt.Sprintf("collection %s not ready", collectionName), nil)
}

// Retrieve embeds the query and returns the closest chunks, best first.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]*entity.ScoredDocumentChunk, error) {
	res, err := r.store.embedder.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, apperrors.NewIngestion("embed query", err)
	}

	uow := r.store.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.DocumentChunkRepository().SearchSimilar(ctx, r.CollectionName, res.Embedding.Values, r.TopK)
	if err != nil {
		return nil, apperrors.NewStorage("similarity search", err)
	}
	return scored, nil
}
