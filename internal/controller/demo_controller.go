package controller

import (
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDemoController interface {
	RegisterRoutes(r fiber.Router)
	FetchAllUserIds(ctx *fiber.Ctx) error
	FetchSessionsByUserId(ctx *fiber.Ctx) error
	FetchMessagesBySessionId(ctx *fiber.Ctx) error
}

type demoController struct {
	service   service.IDemoService
	jwtSecret string
}

func NewDemoController(service service.IDemoService, jwtSecret string) IDemoController {
	return &demoController{service: service, jwtSecret: jwtSecret}
}

func (c *demoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/demo")
	h.Use(serverutils.NewJwtMiddleware(c.jwtSecret))
	h.Get("/fetch_all_user_ids/", c.FetchAllUserIds)
	h.Get("/fetch_sessions_by_user_id", c.FetchSessionsByUserId)
	h.Get("/fetch_messages_by_session_id", c.FetchMessagesBySessionId)
}

func (c *demoController) FetchAllUserIds(ctx *fiber.Ctx) error {
	res, err := c.service.FetchAllUserIds(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}

func (c *demoController) FetchSessionsByUserId(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id")
	if userId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}

	res, err := c.service.FetchSessionsByUserId(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}

func (c *demoController) FetchMessagesBySessionId(ctx *fiber.Ctx) error {
	sessionId := ctx.Query("session_id")
	if sessionId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session_id is required")
	}

	res, err := c.service.FetchMessagesBySessionId(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}
