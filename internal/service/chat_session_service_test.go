package service

import (
	"context"
	"testing"

	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionServiceFixture() (*mockUnitOfWork, IChatSessionService) {
	uow := newMockUnitOfWork()
	svc := NewChatSessionService(&mockRepositoryFactory{uow: uow})
	return uow, svc
}

func TestCreateChatSessionGeneratesSessionId(t *testing.T) {
	uow, svc := newSessionServiceFixture()
	uow.sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Create(context.Background(), &dto.CreateChatSessionRequest{UserId: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, "user-1", res.UserId)
	_, parseErr := uuid.Parse(res.ChatSessionId)
	assert.NoError(t, parseErr)
	uow.sessions.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateChatSessionStorageFailure(t *testing.T) {
	uow, svc := newSessionServiceFixture()
	uow.sessions.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.Create(context.Background(), &dto.CreateChatSessionRequest{UserId: "user-1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindStorage))
}

func TestGetAllChatSessionsMessages(t *testing.T) {
	cases := []struct {
		name     string
		sessions []*entity.ChatSession
		message  string
	}{
		{"none", []*entity.ChatSession{}, "No rows found."},
		{"one", []*entity.ChatSession{{UserId: "u"}}, "1 row found."},
		{"many", []*entity.ChatSession{{UserId: "u"}, {UserId: "u"}}, "2 rows found."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uow, svc := newSessionServiceFixture()
			uow.sessions.On("FindAll", mock.Anything, mock.Anything).Return(tc.sessions, nil)

			res, err := svc.GetAll(context.Background(), "u")
			require.NoError(t, err)
			assert.Equal(t, tc.message, res.Message)
			assert.Len(t, res.Data, len(tc.sessions))
		})
	}
}

func TestDeleteChatSessionNotFound(t *testing.T) {
	uow, svc := newSessionServiceFixture()
	uow.sessions.On("DeleteByUserAndSession", mock.Anything, "u", "missing").Return(int64(0), nil)

	_, err := svc.Delete(context.Background(), &dto.DeleteChatSessionRequest{
		UserId:        "u",
		ChatSessionId: "missing",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestDeleteChatSessionReportsRowCount(t *testing.T) {
	uow, svc := newSessionServiceFixture()
	uow.sessions.On("DeleteByUserAndSession", mock.Anything, "u", "sid").Return(int64(2), nil)

	res, err := svc.Delete(context.Background(), &dto.DeleteChatSessionRequest{
		UserId:        "u",
		ChatSessionId: "sid",
	})
	require.NoError(t, err)
	assert.Equal(t, "2 row(s) deleted.", res.Message)
	assert.Equal(t, int64(2), res.Deleted)
}
