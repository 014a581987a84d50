package serverutils

import (
	"ai-chat-be/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts failures into the
// typed validation error kind so the middleware maps them to 422.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperrors.NewValidation("invalid request: %v", err)
	}
	return nil
}
