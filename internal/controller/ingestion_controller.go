package controller

import (
	"io"

	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIngestionController interface {
	RegisterRoutes(r fiber.Router)
	IngestAndQuery(ctx *fiber.Ctx) error
}

type ingestionController struct {
	service service.IIngestionService
}

func NewIngestionController(service service.IIngestionService) IIngestionController {
	return &ingestionController{service: service}
}

func (c *ingestionController) RegisterRoutes(r fiber.Router) {
	r.Post("/test5/", c.IngestAndQuery)
}

func (c *ingestionController) IngestAndQuery(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	namespace := ctx.FormValue("namespace")
	query := ctx.FormValue("query")
	if namespace == "" || query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "namespace and query are required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot open uploaded file")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read uploaded file")
	}

	res, err := c.service.IngestAndQuery(ctx.Context(), fileHeader.Filename, content, namespace, query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.StatusOK, res))
}
