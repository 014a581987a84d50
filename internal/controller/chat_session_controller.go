package controller

import (
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatSessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatSessionController struct {
	service service.IChatSessionService
}

func NewChatSessionController(service service.IChatSessionService) IChatSessionController {
	return &chatSessionController{service: service}
}

func (c *chatSessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat_session")
	h.Post("/post/", c.Create)
	h.Get("/get/", c.GetAll)
	h.Delete("/delete/", c.Delete)
}

func (c *chatSessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateChatSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}

func (c *chatSessionController) GetAll(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id")
	if userId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}

func (c *chatSessionController) Delete(ctx *fiber.Ctx) error {
	var req dto.DeleteChatSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Delete(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}
