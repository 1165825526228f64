// Package httperr provides status-carrying error values. Domain code returns
// them at the point of detection; the HTTP layer translates them to responses
// exactly once, at the boundary.
package httperr

import (
	"errors"
	"net/http"
)

// Error is a domain error with an explicit HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status for err: the explicit status when err is
// an *Error, 500 for anything unanticipated.
func StatusOf(err error) int {
	var he *Error
	if errors.As(err, &he) {
		return he.Status
	}
	return http.StatusInternalServerError
}

// BadRequest creates a 400 error for a malformed or unreadable request body.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Validation creates a 400 error for a schema violation.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound creates a 404 error.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict creates a 409 error.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// UnsupportedMedia creates a 415 error.
func UnsupportedMedia(message string) *Error {
	return &Error{Status: http.StatusUnsupportedMediaType, Message: message}
}

// Internal creates a 500 error.
func Internal(message string) *Error {
	if message == "" {
		message = "an internal error occurred"
	}
	return &Error{Status: http.StatusInternalServerError, Message: message}
}
