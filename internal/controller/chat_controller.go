package controller

import (
	"bufio"
	"context"
	"time"

	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const streamTimeout = 5 * time.Minute

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	TestChatWithHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/test_chat_with_history/", c.TestChatWithHistory)
}

// TestChatWithHistory streams the model reply as plain text, one fragment
// per generation step. A mid-stream failure terminates the byte stream.
func (c *chatController) TestChatWithHistory(ctx *fiber.Ctx) error {
	chatSessionId := ctx.Query("chat_session_id")
	chatInput := ctx.Query("chat_input")
	if chatSessionId == "" || chatInput == "" {
		return fiber.NewError(fiber.StatusBadRequest, "chat_session_id and chat_input are required")
	}

	// The request context dies when this handler returns, before the body
	// stream writer runs, so the exchange gets its own context.
	streamCtx, cancel := context.WithTimeout(context.Background(), streamTimeout)

	out, errs, err := c.service.StreamChat(streamCtx, chatSessionId, chatInput)
	if err != nil {
		// Pre-stream failures (unknown session, storage) still produce the
		// JSON envelope via the error middleware.
		cancel()
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	ctx.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for chunk := range out {
			if _, err := w.WriteString(chunk); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
		<-errs
	})

	return nil
}
