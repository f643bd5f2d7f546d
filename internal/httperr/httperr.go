// Package httperr defines the structured error body the prompts API
// returns. The message field is what clients surface to the user, so it
// must always be human-readable.
package httperr

import (
	"fmt"
	"net/http"
)

const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// Error is an API error with a machine code and a user-facing message.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// BadRequest builds a 400 error carrying the given message verbatim.
func BadRequest(message string) *Error {
	return &Error{
		Code:       CodeBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound builds a 404 error for the named resource.
func NotFound(resource string, id int64) *Error {
	return &Error{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s with id %d not found", resource, id),
		HTTPStatus: http.StatusNotFound,
	}
}

// Internal builds a 500 error wrapping the underlying cause. The cause is
// kept out of the response body.
func Internal(message string, err error) *Error {
	return &Error{
		Code:       CodeInternalError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
