package serverutils

// Response is the uniform envelope returned by every non-streaming endpoint,
// success and failure alike.
type Response[T any] struct {
	Success    bool    `json:"success"`
	StatusCode int     `json:"status_code"`
	Error      *string `json:"error"`
	Data       T       `json:"data"`
}

func SuccessResponse[T any](statusCode int, data T) Response[T] {
	return Response[T]{
		Success:    true,
		StatusCode: statusCode,
		Data:       data,
	}
}

func ErrorResponse(statusCode int, message string) Response[any] {
	return Response[any]{
		Success:    false,
		StatusCode: statusCode,
		Error:      &message,
	}
}
