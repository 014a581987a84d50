package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"ai-chat-be/internal/constant"
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/pkg/events"
	"ai-chat-be/pkg/llm"
	"ai-chat-be/pkg/rag"

	"github.com/patrickmn/go-cache"
)

const persistTimeout = 10 * time.Second

type IChatService interface {
	// StreamChat persists the user turn, then streams the model reply. The
	// assistant turn is persisted once, after the stream completes cleanly.
	// The returned channels follow the llm.LLMProvider.ChatStream contract.
	StreamChat(ctx context.Context, chatSessionId, chatInput string) (<-chan string, <-chan error, error)
}

type chatService struct {
	historyService   IChatHistoryService
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	logger           logger.ILogger

	mu    sync.Mutex
	locks *cache.Cache // chat_session_id -> *sync.Mutex
}

func NewChatService(
	historyService IChatHistoryService,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		historyService:   historyService,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		logger:           sysLogger,
		locks:            cache.New(30*time.Minute, 10*time.Minute),
	}
}

// sessionLock returns the mutex serializing exchanges of one session. Locks
// for idle sessions age out of the cache.
func (s *chatService) sessionLock(chatSessionId string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.locks.Get(chatSessionId); ok {
		s.locks.Set(chatSessionId, v, cache.DefaultExpiration)
		return v.(*sync.Mutex)
	}
	m := &sync.Mutex{}
	s.locks.Set(chatSessionId, m, cache.DefaultExpiration)
	return m
}

func (s *chatService) StreamChat(ctx context.Context, chatSessionId, chatInput string) (<-chan string, <-chan error, error) {
	lock := s.sessionLock(chatSessionId)
	lock.Lock()

	// Load the window before persisting the new turn, so the model sees the
	// prior conversation plus exactly one new user message.
	window, err := s.historyService.LoadWindow(ctx, chatSessionId)
	if err != nil {
		lock.Unlock()
		return nil, nil, err
	}

	messages, err := rag.ToLLMMessages(window, chatInput)
	if err != nil {
		lock.Unlock()
		return nil, nil, err
	}

	if _, err := s.historyService.Append(ctx, &dto.AppendChatHistoryRequest{
		ChatSession: chatSessionId,
		Role:        constant.ChatRoleHuman,
		Content:     chatInput,
	}); err != nil {
		lock.Unlock()
		return nil, nil, err
	}

	chunks, errs := s.llmProvider.ChatStream(ctx, messages)

	out := make(chan string)
	outErrs := make(chan error, 1)

	go func() {
		defer lock.Unlock()
		defer close(out)
		defer close(outErrs)

		var reply strings.Builder
		var streamErr error

	forward:
		for chunk := range chunks {
			reply.WriteString(chunk)
			select {
			case out <- chunk:
			case <-ctx.Done():
				// The consumer stopped reading. Stop forwarding so the
				// session lock is released; the provider stops on the
				// same context.
				streamErr = ctx.Err()
				break forward
			}
		}
		for range chunks {
		}
		if err, ok := <-errs; ok && err != nil && streamErr == nil {
			streamErr = err
		}
		if streamErr != nil {
			outErrs <- streamErr
			s.logger.Error("chat", "stream failed", map[string]interface{}{
				"chat_session_id": chatSessionId,
				"error":           streamErr.Error(),
			})
			return
		}

		s.finishExchange(chatSessionId, chatInput, reply.String())
	}()

	return out, outErrs, nil
}

// finishExchange persists the assistant turn and publishes the audit event.
// It runs after the request context may already be gone, so it uses its own.
func (s *chatService) finishExchange(chatSessionId, chatInput, reply string) {
	if reply == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if _, err := s.historyService.Append(ctx, &dto.AppendChatHistoryRequest{
		ChatSession: chatSessionId,
		Role:        constant.ChatRoleAI,
		Content:     reply,
	}); err != nil {
		s.logger.Error("chat", "persist assistant turn failed", map[string]interface{}{
			"chat_session_id": chatSessionId,
			"error":           err.Error(),
		})
		return
	}

	evt := events.NewChatExchangeCompleted(chatSessionId, len(chatInput), len(reply))
	if err := s.publisherService.PublishEvent(ctx, evt); err != nil {
		s.logger.Warn("chat", "publish exchange event failed", map[string]interface{}{
			"chat_session_id": chatSessionId,
			"error":           err.Error(),
		})
	}

	s.logger.Info("chat", "exchange completed", map[string]interface{}{
		"chat_session_id": chatSessionId,
		"reply_length":    len(reply),
	})
}
