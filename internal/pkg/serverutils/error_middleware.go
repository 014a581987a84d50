package serverutils

import (
	"errors"
	"log"

	"ai-chat-be/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts every error returned by a handler into the
// uniform response envelope. Callers never see a raw error.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
		}

		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}

func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindValidation:
		return fiber.StatusUnprocessableEntity
	case apperrors.KindUnsupportedFormat:
		return fiber.StatusBadRequest
	case apperrors.KindStorage, apperrors.KindDecode, apperrors.KindConnection, apperrors.KindIngestion:
		return fiber.StatusInternalServerError
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return fiber.StatusInternalServerError
}
