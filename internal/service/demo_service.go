package service

import (
	"context"

	"ai-chat-be/internal/apperrors"
	"ai-chat-be/internal/repository/specification"
	"ai-chat-be/internal/repository/unitofwork"
)

// IDemoService exposes the read-only projections backing the demo dashboard.
type IDemoService interface {
	FetchAllUserIds(ctx context.Context) ([]string, error)
	FetchSessionsByUserId(ctx context.Context, userId string) ([]string, error)
	FetchMessagesBySessionId(ctx context.Context, chatSessionId string) ([]string, error)
}

type demoService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDemoService(uowFactory unitofwork.RepositoryFactory) IDemoService {
	return &demoService{
		uowFactory: uowFactory,
	}
}

func (d *demoService) FetchAllUserIds(ctx context.Context) ([]string, error) {
	uow := d.uowFactory.NewUnitOfWork(ctx)

	userIds, err := uow.ChatSessionRepository().DistinctUserIds(ctx)
	if err != nil {
		return nil, apperrors.NewStorage("fetch user ids", err)
	}
	return userIds, nil
}

func (d *demoService) FetchSessionsByUserId(ctx context.Context, userId string) ([]string, error) {
	uow := d.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewStorage("fetch sessions", err)
	}

	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ChatSessionId)
	}
	return ids, nil
}

func (d *demoService) FetchMessagesBySessionId(ctx context.Context, chatSessionId string) ([]string, error) {
	uow := d.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: chatSessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperrors.NewStorage("fetch messages", err)
	}

	contents := make([]string, 0, len(messages))
	for _, m := range messages {
		contents = append(contents, m.Content)
	}
	return contents, nil
}
