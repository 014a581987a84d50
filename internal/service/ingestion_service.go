package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/pkg/events"
	"ai-chat-be/pkg/extract"
	"ai-chat-be/pkg/llm"
	"ai-chat-be/pkg/rag"
	"ai-chat-be/pkg/splitter"
	"ai-chat-be/pkg/vectorstore"
)

const (
	ingestChunkSize    = 1500
	ingestChunkOverlap = 200
)

type IIngestionService interface {
	// Ingest chunks, embeds and stores one document, returning the retriever
	// bound to the new collection and the number of chunks written.
	Ingest(ctx context.Context, fileName string, content []byte, namespace string) (*vectorstore.Retriever, int, error)

	// IngestAndQuery runs Ingest and immediately answers one question against
	// the fresh collection.
	IngestAndQuery(ctx context.Context, fileName string, content []byte, namespace, query string) (*dto.IngestAndQueryResponse, error)
}

type ingestionService struct {
	store            *vectorstore.Store
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewIngestionService(
	store *vectorstore.Store,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IIngestionService {
	return &ingestionService{
		store:            store,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, fileName string, content []byte, namespace string) (*vectorstore.Retriever, int, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	// The extension gate fires before any file or store I/O
	if !extract.Supported(ext) {
		return nil, 0, apperrors.NewUnsupportedFormat(ext)
	}

	chunks, err := s.chunkDocument(fileName, content, ext)
	if err != nil {
		return nil, 0, err
	}

	retriever, err := s.store.CreateCollection(ctx, namespace, chunks)
	if err != nil {
		return nil, 0, err
	}

	evt := events.NewDocumentIngested(retriever.CollectionName, namespace, fileName, len(chunks))
	if err := s.publisherService.PublishEvent(ctx, evt); err != nil {
		s.logger.Warn("ingestion", "publish ingested event failed", map[string]interface{}{
			"collection_name": retriever.CollectionName,
			"error":           err.Error(),
		})
	}

	s.logger.Info("ingestion", "document ingested", map[string]interface{}{
		"collection_name": retriever.CollectionName,
		"file_name":       fileName,
		"chunk_count":     len(chunks),
	})

	return retriever, len(chunks), nil
}

func (s *ingestionService) IngestAndQuery(ctx context.Context, fileName string, content []byte, namespace, query string) (*dto.IngestAndQueryResponse, error) {
	retriever, chunkCount, err := s.Ingest(ctx, fileName, content, namespace)
	if err != nil {
		return nil, err
	}

	scored, err := retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, err
	}

	prompt := rag.NewAnswerBuilder(scored, query).Build()
	answer, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		return nil, apperrors.NewIngestion("generate answer", err)
	}

	return &dto.IngestAndQueryResponse{
		CollectionName: retriever.CollectionName,
		ChunkCount:     chunkCount,
		Answer:         answer,
	}, nil
}

// chunkDocument picks the splitting strategy from the extension. Markdown
// splits on headers, plain text through the recursive splitter, binary
// formats through a scoped temp file and their loaders.
func (s *ingestionService) chunkDocument(fileName string, content []byte, ext string) ([]splitter.Chunk, error) {
	switch ext {
	case ".md":
		text, err := extract.ExtractBytes(content, ext)
		if err != nil {
			return nil, apperrors.NewIngestion("load markdown", err)
		}
		return splitter.SplitMarkdown(text), nil

	case ".txt":
		text, err := extract.ExtractBytes(content, ext)
		if err != nil {
			return nil, apperrors.NewIngestion("load text", err)
		}
		return s.recursiveChunks(fileName, text), nil

	default:
		text, err := s.extractViaTempFile(fileName, content, ext)
		if err != nil {
			return nil, err
		}
		return s.recursiveChunks(fileName, text), nil
	}
}

// extractViaTempFile writes the upload to a scoped temp file for the binary
// loaders and removes it on every exit path.
func (s *ingestionService) extractViaTempFile(fileName string, content []byte, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "ingest-*"+ext)
	if err != nil {
		return "", apperrors.NewIngestion("create temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", apperrors.NewIngestion("write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return "", apperrors.NewIngestion("close temp file", err)
	}

	text, err := extract.ExtractFile(tmpPath)
	if err != nil {
		return "", apperrors.NewIngestion(fmt.Sprintf("load %s", fileName), err)
	}
	return text, nil
}

func (s *ingestionService) recursiveChunks(fileName, text string) []splitter.Chunk {
	pieces := splitter.NewRecursiveSplitter(ingestChunkSize, ingestChunkOverlap).Split(text)
	chunks := make([]splitter.Chunk, 0, len(pieces))
	for _, piece := range pieces {
		chunks = append(chunks, splitter.Chunk{
			Content:  piece,
			Metadata: map[string]string{"source": fileName},
		})
	}
	return chunks
}
