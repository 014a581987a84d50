package service

import (
	"context"
	"strings"
	"testing"

	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/entity"
	"ai-chat-be/pkg/embedding"
	"ai-chat-be/pkg/llm"
	"ai-chat-be/pkg/vectorstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeEmbedProvider struct{}

func (fakeEmbedProvider) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.5}},
	}, nil
}

type fakeGenProvider struct {
	answer     string
	lastPrompt string
}

func (f *fakeGenProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.answer, nil
}

func (f *fakeGenProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	return f.answer, nil
}

func (f *fakeGenProvider) ChatStream(ctx context.Context, history []llm.Message, opts ...llm.Option) (<-chan string, <-chan error) {
	out := make(chan string)
	errs := make(chan error, 1)
	close(out)
	close(errs)
	return out, errs
}

func newIngestionFixture(gen *fakeGenProvider) (*mockUnitOfWork, *mockPublisherService, IIngestionService) {
	uow := newMockUnitOfWork()
	store := vectorstore.NewStore(&mockRepositoryFactory{uow: uow}, fakeEmbedProvider{})
	publisher := &mockPublisherService{}
	svc := NewIngestionService(store, gen, publisher, nopLogger{})
	return uow, publisher, svc
}

func TestIngestUnsupportedExtensionFailsBeforeStoreIO(t *testing.T) {
	uow, _, svc := newIngestionFixture(&fakeGenProvider{})

	_, _, err := svc.Ingest(context.Background(), "report.xyz", []byte("data"), "docs")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUnsupportedFormat))
	uow.chunks.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything)
}

func TestIngestMarkdownOneChunkPerHeader(t *testing.T) {
	uow, publisher, svc := newIngestionFixture(&fakeGenProvider{})

	var stored []*entity.DocumentChunk
	uow.chunks.On("CreateBulk", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).([]*entity.DocumentChunk)
		}).Return(nil)
	uow.chunks.On("Count", mock.Anything, mock.Anything).Return(int64(3), nil)
	publisher.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	doc := "# One\nfirst\n\n# Two\nsecond\n\n# Three\nthird"
	retriever, chunkCount, err := svc.Ingest(context.Background(), "notes.md", []byte(doc), "docs")
	require.NoError(t, err)

	assert.Equal(t, 3, chunkCount)
	assert.True(t, strings.HasPrefix(retriever.CollectionName, "docs_"))

	require.Len(t, stored, 3)
	assert.Contains(t, stored[0].Content, "# One")
	assert.Equal(t, "One", stored[0].Metadata["h1"])
	publisher.AssertCalled(t, "PublishEvent", mock.Anything, mock.Anything)
}

func TestIngestPlainTextCarriesSourceMetadata(t *testing.T) {
	uow, publisher, svc := newIngestionFixture(&fakeGenProvider{})

	var stored []*entity.DocumentChunk
	uow.chunks.On("CreateBulk", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).([]*entity.DocumentChunk)
		}).Return(nil)
	uow.chunks.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	publisher.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	_, chunkCount, err := svc.Ingest(context.Background(), "readme.txt", []byte("plain contents"), "docs")
	require.NoError(t, err)

	assert.Equal(t, 1, chunkCount)
	require.Len(t, stored, 1)
	assert.Equal(t, "readme.txt", stored[0].Metadata["source"])
}

func TestIngestAndQueryAnswersFromRetrievedChunks(t *testing.T) {
	gen := &fakeGenProvider{answer: "alpha is the first letter"}
	uow, publisher, svc := newIngestionFixture(gen)

	uow.chunks.On("CreateBulk", mock.Anything, mock.Anything).Return(nil)
	uow.chunks.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	uow.chunks.On("SearchSimilar", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.ScoredDocumentChunk{
			{Chunk: &entity.DocumentChunk{Content: "alpha: first letter"}, Similarity: 0.95},
		}, nil)
	publisher.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.IngestAndQuery(context.Background(), "glossary.md", []byte("# Alpha\nfirst letter"), "docs", "what is alpha?")
	require.NoError(t, err)

	assert.Equal(t, 1, res.ChunkCount)
	assert.True(t, strings.HasPrefix(res.CollectionName, "docs_"))
	assert.Equal(t, "alpha is the first letter", res.Answer)
	assert.Contains(t, gen.lastPrompt, "alpha: first letter")
	assert.Contains(t, gen.lastPrompt, "what is alpha?")
}
