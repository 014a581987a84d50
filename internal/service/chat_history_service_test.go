package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/constant"
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionId = "5cc22949-e0f2-40c3-ac0a-889315a195a0"

func sessionExists(uow *mockUnitOfWork) {
	uow.sessions.On("FindOne", mock.Anything, mock.Anything).
		Return(&entity.ChatSession{ChatSessionId: testSessionId}, nil)
}

func TestAppendRejectsUnknownRole(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := NewChatHistoryService(&mockRepositoryFactory{uow: uow}, 50)

	_, err := svc.Append(context.Background(), &dto.AppendChatHistoryRequest{
		ChatSession: testSessionId,
		Role:        "assistant", // provider-side name, not a stored role
		Content:     "hi",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	uow.messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppendUnknownSession(t *testing.T) {
	uow := newMockUnitOfWork()
	uow.sessions.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)
	svc := NewChatHistoryService(&mockRepositoryFactory{uow: uow}, 50)

	_, err := svc.Append(context.Background(), &dto.AppendChatHistoryRequest{
		ChatSession: testSessionId,
		Role:        constant.ChatRoleHuman,
		Content:     "hi",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestAppendPersistsMessage(t *testing.T) {
	uow := newMockUnitOfWork()
	sessionExists(uow)
	uow.messages.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewChatHistoryService(&mockRepositoryFactory{uow: uow}, 50)

	res, err := svc.Append(context.Background(), &dto.AppendChatHistoryRequest{
		ChatSession: testSessionId,
		Role:        constant.ChatRoleAI,
		Content:     "woof",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.ChatRoleAI, res.Role)
	assert.Equal(t, "woof", res.Content)
	assert.Equal(t, testSessionId, res.ChatSessionId)
}

func TestLoadWindowTruncatesToRecentMessages(t *testing.T) {
	uow := newMockUnitOfWork()
	sessionExists(uow)

	stored := make([]*entity.ChatMessage, 0, 5)
	for i := 0; i < 5; i++ {
		stored = append(stored, &entity.ChatMessage{
			ChatSessionId: testSessionId,
			Role:          constant.ChatRoleHuman,
			Content:       fmt.Sprintf("msg-%d", i),
			CreatedAt:     time.Now(),
		})
	}
	uow.messages.On("FindAll", mock.Anything, mock.Anything).Return(stored, nil)

	svc := NewChatHistoryService(&mockRepositoryFactory{uow: uow}, 3)

	window, err := svc.LoadWindow(context.Background(), testSessionId)
	require.NoError(t, err)
	require.Len(t, window, 3)
	// Most recent three, still oldest first
	assert.Equal(t, "msg-2", window[0].Content)
	assert.Equal(t, "msg-4", window[2].Content)
}

func TestLoadWindowRejectsCorruptedRole(t *testing.T) {
	uow := newMockUnitOfWork()
	sessionExists(uow)
	uow.messages.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.ChatMessage{
		{ChatSessionId: testSessionId, Role: "robot", Content: "??"},
	}, nil)

	svc := NewChatHistoryService(&mockRepositoryFactory{uow: uow}, 50)

	_, err := svc.LoadWindow(context.Background(), testSessionId)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindDecode))
}

func TestGetHistoryUnknownSession(t *testing.T) {
	uow := newMockUnitOfWork()
	uow.sessions.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)
	svc := NewChatHistoryService(&mockRepositoryFactory{uow: uow}, 50)

	_, err := svc.GetHistory(context.Background(), testSessionId)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
