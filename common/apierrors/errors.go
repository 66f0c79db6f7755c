package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest         = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized       = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden          = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound           = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer     = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrServiceUnavailable = New(http.StatusServiceUnavailable, "Service unavailable", nil)
)

// FallbackMessage is shown when an API error body carries no usable message.
const FallbackMessage = "Something went wrong. Please try again."

// Transport wraps a network-level failure (DNS, refused connection, timeout).
// Code 0 means the request never produced an HTTP response.
func Transport(err error) *Error {
	return New(0, "request failed", err)
}

// MalformedResponse wraps a response body that could not be decoded or that
// failed schema validation at the client boundary.
func MalformedResponse(err error) *Error {
	return New(0, "malformed response", err)
}

// apiBody is the shape error responses are probed for. The API is not
// consistent: some endpoints use "error", others "detail".
type apiBody struct {
	ErrorMsg string `json:"error"`
	Detail   string `json:"detail"`
}

// FromResponse builds an Error from a non-2xx response body. The body is
// parsed for an "error" field, then "detail"; anything else falls back to a
// generic message.
func FromResponse(statusCode int, body []byte) *Error {
	var parsed apiBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.ErrorMsg != "" {
			return New(statusCode, parsed.ErrorMsg, nil)
		}
		if parsed.Detail != "" {
			return New(statusCode, parsed.Detail, nil)
		}
	}
	return New(statusCode, FallbackMessage, nil)
}

// StatusCode returns the HTTP status carried by err, or 0 for transport and
// decoding failures.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 API response.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// UserMessage extracts a single human-readable message for display.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return FallbackMessage
	}
	return ""
}
