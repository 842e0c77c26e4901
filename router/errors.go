package router

import "net/http"

// Error codes carried alongside the human-readable message.
var (
	// ErrInvalidData is sent when a field is malformed, missing or oversized
	ErrInvalidData = "INVALID_DATA"
	// ErrNotFound is sent when a referenced user/freet/interaction/barrier is absent
	ErrNotFound = "NOT_FOUND"
	// ErrUnauthorized is sent on failed passcode or credential checks
	ErrUnauthorized = "UNAUTHORIZED"
	// ErrForbidden is sent when the caller is not logged in or not the owner
	ErrForbidden = "FORBIDDEN"
	// ErrConflict is sent when a duplicate barrier/profile/follow edge is created
	ErrConflict = "CONFLICT"
	// ErrInternal is sent when the store itself fails
	ErrInternal = "INTERNAL_ERROR"
)

// HTTPError is the JSON error body: `{"error": ..., "error_code": ...}`.
type HTTPError struct {
	IError  error  `json:"-"`
	Status  int    `json:"-"`
	Message string `json:"error"`
	Code    string `json:"error_code,omitempty"`
}

func Validation(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: msg, Code: ErrInvalidData}
}

// TooLarge is the 413 flavor of a validation failure (oversized content).
func TooLarge(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusRequestEntityTooLarge, Message: msg, Code: ErrInvalidData}
}

func NotFound(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: msg, Code: ErrNotFound}
}

func Unauthorized(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusUnauthorized, Message: msg, Code: ErrUnauthorized}
}

func Forbidden(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusForbidden, Message: msg, Code: ErrForbidden}
}

func Conflict(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusConflict, Message: msg, Code: ErrConflict}
}

func Internal(err error) *HTTPError {
	return &HTTPError{
		IError:  err,
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
		Code:    ErrInternal,
	}
}
