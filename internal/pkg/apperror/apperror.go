package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries the HTTP status a business error maps to, so controllers
// and the error middleware never have to inspect error strings.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// Validation covers malformed or missing input.
func Validation(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

// Auth covers bad credentials and invalid or expired tokens.
func Auth(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}

// Forbidden covers role or ownership mismatches.
func Forbidden(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Message: message}
}

// NotFound covers entities that are absent or not owned by the caller.
func NotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

// Conflict covers duplicate email and duplicate therapist profile. It maps
// to 400, not 409, matching the upstream API contract.
func Conflict(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

// Upstream covers external chat provider failures. The upstream error text is
// included in the message surfaced to the caller.
func Upstream(message string) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: message}
}

// From extracts an *AppError if err is one.
func From(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
