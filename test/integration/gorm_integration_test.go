package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-chat-be/internal/constant"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"
	"ai-chat-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DATABASE_URL_TEST")
	if dsn == "" {
		t.Skip("Skipping integration test: DATABASE_URL_TEST not set")
	}

	manager := database.NewManager(dsn)
	handle, err := manager.Handle()
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	defer manager.Close()

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(handle.DB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.DocumentChunkRepository())

	// Basic Ping
	sqlDB, _ := handle.DB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Logf("Connected to DB (session %s)", handle.SessionId)

	t.Run("Check Chat Session Repository", func(t *testing.T) {
		count, err := uow.ChatSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Chat session count: %d", count)
	})

	t.Run("Check Document Chunk Repository", func(t *testing.T) {
		count, err := uow.DocumentChunkRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document chunk count: %d", count)
	})

	t.Run("Session And Message Round Trip", func(t *testing.T) {
		ctx := context.Background()
		userId := "integration-" + uuid.NewString()
		chatSessionId := uuid.NewString()

		session := &entity.ChatSession{
			UserId:        userId,
			ChatSessionId: chatSessionId,
		}
		err := uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		message := &entity.ChatMessage{
			ChatSessionId: chatSessionId,
			Role:          constant.ChatRoleHuman,
			Content:       "integration round trip",
		}
		err = uow.ChatMessageRepository().Create(ctx, message)
		assert.NoError(t, err)

		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatSessionID{ChatSessionID: chatSessionId},
		)
		assert.NoError(t, err)
		assert.Len(t, messages, 1)
		assert.Equal(t, "integration round trip", messages[0].Content)

		deleted, err := uow.ChatSessionRepository().DeleteByUserAndSession(ctx, userId, chatSessionId)
		assert.NoError(t, err)
		assert.EqualValues(t, 1, deleted)
	})
}
