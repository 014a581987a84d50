package controller

import (
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatHistoryController interface {
	RegisterRoutes(r fiber.Router)
	Append(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
}

type chatHistoryController struct {
	service service.IChatHistoryService
}

func NewChatHistoryController(service service.IChatHistoryService) IChatHistoryController {
	return &chatHistoryController{service: service}
}

func (c *chatHistoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat_history")
	h.Post("/post/", c.Append)
	h.Get("/get/", c.GetHistory)
}

func (c *chatHistoryController) Append(ctx *fiber.Ctx) error {
	var req dto.AppendChatHistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Append(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}

func (c *chatHistoryController) GetHistory(ctx *fiber.Ctx) error {
	chatSession := ctx.Query("chat_session")
	if _, err := uuid.Parse(chatSession); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "chat_session must be a uuid")
	}

	res, err := c.service.GetHistory(ctx.Context(), chatSession)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}
