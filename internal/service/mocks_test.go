package service

import (
	"context"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/contract"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"
	"ai-chat-be/pkg/events"

	"github.com/stretchr/testify/mock"
)

// --- Repository factory / unit of work ---

type mockRepositoryFactory struct {
	uow *mockUnitOfWork
}

func (f *mockRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type mockUnitOfWork struct {
	mock.Mock
	sessions *mockChatSessionRepository
	messages *mockChatMessageRepository
	chunks   *mockDocumentChunkRepository
}

func newMockUnitOfWork() *mockUnitOfWork {
	return &mockUnitOfWork{
		sessions: &mockChatSessionRepository{},
		messages: &mockChatMessageRepository{},
		chunks:   &mockDocumentChunkRepository{},
	}
}

func (u *mockUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *mockUnitOfWork) Commit() error                   { return nil }
func (u *mockUnitOfWork) Rollback() error                 { return nil }

func (u *mockUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return u.sessions
}

func (u *mockUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.messages
}

func (u *mockUnitOfWork) DocumentChunkRepository() contract.DocumentChunkRepository {
	return u.chunks
}

// --- Repositories ---

type mockChatSessionRepository struct {
	mock.Mock
}

func (m *mockChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockChatSessionRepository) DeleteByUserAndSession(ctx context.Context, userId, chatSessionId string) (int64, error) {
	args := m.Called(ctx, userId, chatSessionId)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockChatSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.ChatSession), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.ChatSession), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatSessionRepository) DistinctUserIds(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type mockChatMessageRepository struct {
	mock.Mock
}

func (m *mockChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockChatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type mockDocumentChunkRepository struct {
	mock.Mock
}

func (m *mockDocumentChunkRepository) CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error {
	args := m.Called(ctx, chunks)
	return args.Error(0)
}

func (m *mockDocumentChunkRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.DocumentChunk), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocumentChunkRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDocumentChunkRepository) SearchSimilar(ctx context.Context, collectionName string, embedding []float32, limit int) ([]*entity.ScoredDocumentChunk, error) {
	args := m.Called(ctx, collectionName, embedding, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.ScoredDocumentChunk), args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Publisher ---

type mockPublisherService struct {
	mock.Mock
}

func (m *mockPublisherService) Publish(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *mockPublisherService) PublishEvent(ctx context.Context, evt events.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

// --- Logger ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
