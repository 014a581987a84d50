package service

import (
	"context"
	"fmt"
	"time"

	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IChatSessionService interface {
	Create(ctx context.Context, req *dto.CreateChatSessionRequest) (*dto.ChatSessionDTO, error)
	GetAll(ctx context.Context, userId string) (*dto.GetChatSessionsResponse, error)
	Delete(ctx context.Context, req *dto.DeleteChatSessionRequest) (*dto.DeleteChatSessionResponse, error)
}

type chatSessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChatSessionService(uowFactory unitofwork.RepositoryFactory) IChatSessionService {
	return &chatSessionService{
		uowFactory: uowFactory,
	}
}

func (c *chatSessionService) Create(ctx context.Context, req *dto.CreateChatSessionRequest) (*dto.ChatSessionDTO, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session := entity.ChatSession{
		UserId:        req.UserId,
		ChatSessionId: uuid.NewString(),
		CreatedAt:     time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, apperrors.NewStorage("create chat session", err)
	}

	return &dto.ChatSessionDTO{
		Id:            session.Id,
		UserId:        session.UserId,
		ChatSessionId: session.ChatSessionId,
		CreatedAt:     session.CreatedAt,
	}, nil
}

func (c *chatSessionService) GetAll(ctx context.Context, userId string) (*dto.GetChatSessionsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperrors.NewStorage("list chat sessions", err)
	}

	result := make([]dto.ChatSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, dto.ChatSessionDTO{
			Id:            s.Id,
			UserId:        s.UserId,
			ChatSessionId: s.ChatSessionId,
			CreatedAt:     s.CreatedAt,
		})
	}

	return &dto.GetChatSessionsResponse{
		Message: rowsFoundMessage(len(result)),
		Data:    result,
	}, nil
}

func (c *chatSessionService) Delete(ctx context.Context, req *dto.DeleteChatSessionRequest) (*dto.DeleteChatSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.ChatSessionRepository().DeleteByUserAndSession(ctx, req.UserId, req.ChatSessionId)
	if err != nil {
		return nil, apperrors.NewStorage("delete chat session", err)
	}
	if deleted == 0 {
		return nil, apperrors.NewNotFound("User_chat_session not found")
	}

	return &dto.DeleteChatSessionResponse{
		Message: fmt.Sprintf("%d row(s) deleted.", deleted),
		Deleted: deleted,
	}, nil
}

func rowsFoundMessage(n int) string {
	switch n {
	case 0:
		return "No rows found."
	case 1:
		return "1 row found."
	default:
		return fmt.Sprintf("%d rows found.", n)
	}
}
