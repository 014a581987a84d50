package service

import (
	"context"
	"time"

	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/constant"
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"
)

type IChatHistoryService interface {
	Append(ctx context.Context, req *dto.AppendChatHistoryRequest) (*dto.ChatMessageDTO, error)
	// GetHistory returns the most recent messages of a session, oldest first,
	// truncated to the configured window.
	GetHistory(ctx context.Context, chatSessionId string) (*dto.GetChatHistoryResponse, error)
	// LoadWindow is GetHistory without the DTO wrapping, for the chat pipeline.
	LoadWindow(ctx context.Context, chatSessionId string) ([]entity.SimpleMessage, error)
}

type chatHistoryService struct {
	uowFactory          unitofwork.RepositoryFactory
	recentHistoryLength int
}

func NewChatHistoryService(uowFactory unitofwork.RepositoryFactory, recentHistoryLength int) IChatHistoryService {
	if recentHistoryLength <= 0 {
		recentHistoryLength = 50
	}
	return &chatHistoryService{
		uowFactory:          uowFactory,
		recentHistoryLength: recentHistoryLength,
	}
}

func (c *chatHistoryService) Append(ctx context.Context, req *dto.AppendChatHistoryRequest) (*dto.ChatMessageDTO, error) {
	if !constant.IsValidChatRole(req.Role) {
		return nil, apperrors.NewValidation("invalid chat role: %s", req.Role)
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := c.requireSession(ctx, uow, req.ChatSession); err != nil {
		return nil, err
	}

	msg := entity.ChatMessage{
		ChatSessionId: req.ChatSession,
		Role:          req.Role,
		Content:       req.Content,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &msg); err != nil {
		return nil, apperrors.NewStorage("append chat history", err)
	}

	return &dto.ChatMessageDTO{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		CreatedAt:     msg.CreatedAt,
	}, nil
}

func (c *chatHistoryService) GetHistory(ctx context.Context, chatSessionId string) (*dto.GetChatHistoryResponse, error) {
	window, err := c.LoadWindow(ctx, chatSessionId)
	if err != nil {
		return nil, err
	}
	return &dto.GetChatHistoryResponse{Messages: window}, nil
}

func (c *chatHistoryService) LoadWindow(ctx context.Context, chatSessionId string) ([]entity.SimpleMessage, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := c.requireSession(ctx, uow, chatSessionId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: chatSessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperrors.NewStorage("load chat history", err)
	}

	// Keep only the most recent window, still oldest first
	if len(messages) > c.recentHistoryLength {
		messages = messages[len(messages)-c.recentHistoryLength:]
	}

	window := make([]entity.SimpleMessage, 0, len(messages))
	for _, msg := range messages {
		if !constant.IsValidChatRole(msg.Role) {
			return nil, apperrors.NewDecode("stored message has unknown role "+msg.Role, nil)
		}
		window = append(window, entity.SimpleMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return window, nil
}

func (c *chatHistoryService) requireSession(ctx context.Context, uow unitofwork.UnitOfWork, chatSessionId string) error {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByChatSessionID{ChatSessionID: chatSessionId},
	)
	if err != nil {
		return apperrors.NewStorage("lookup chat session", err)
	}
	if session == nil {
		return apperrors.NewNotFound("Chat session not found")
	}
	return nil
}
