// Package apperr defines the error taxonomy shared by every layer.  An
// Error carries an HTTP status and a message (plus optional field-level
// detail for validation failures) and is translated into the response
// envelope at a single boundary, the Echo error handler in the router
// package.  Nothing below the boundary writes error responses itself.
package apperr

import "net/http"

// Error is a (status, message) pair. Fields is non-nil only for validation
// errors, carrying one message per offending input field.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

// Validation builds a 400 error with per-field messages.
func Validation(fields map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation failed", Fields: fields}
}

// BadRequest builds a 400 error with a plain message.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Conflict reports a duplicate resource. The original API surfaces
// conflicts as 400, so this keeps that contract.
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Unauthorized builds a 401 error.
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// NotFound builds a 404 error.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}
