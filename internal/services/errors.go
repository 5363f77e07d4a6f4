package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a service failure that already knows its HTTP status. Handlers
// surface Message verbatim; anything else is treated as an internal error.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func AsError(err error) (*Error, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

func errBadRequest(msg string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: msg}
}

func errUnauthorized(msg string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: msg}
}

func errForbidden(msg string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: msg}
}

func errNotFound(msg string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: msg}
}
