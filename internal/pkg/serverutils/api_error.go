package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError carries an HTTP status code alongside the message so services can
// signal "not found" or "invalid transition" without importing fiber.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(statusCode int, message string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func NotFound(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}

func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}
