package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the HTTP layer can map it to a
// status code without inspecting error strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindStorage
	KindDecode
	KindConnection
	KindUnsupportedFormat
	KindIngestion
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error // underlying driver/provider error, may be nil
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewValidation(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewStorage(msg string, err error) *AppError {
	return &AppError{Kind: KindStorage, Message: msg, Err: err}
}

func NewDecode(msg string, err error) *AppError {
	return &AppError{Kind: KindDecode, Message: msg, Err: err}
}

func NewConnection(msg string, err error) *AppError {
	return &AppError{Kind: KindConnection, Message: msg, Err: err}
}

func NewUnsupportedFormat(ext string) *AppError {
	return &AppError{Kind: KindUnsupportedFormat, Message: fmt.Sprintf("unsupported file format: %s", ext)}
}

func NewIngestion(msg string, err error) *AppError {
	return &AppError{Kind: KindIngestion, Message: msg, Err: err}
}

// KindOf extracts the Kind from err, or KindUnknown if err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
