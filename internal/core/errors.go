package core

import "errors"

// Error codes for domain errors. Only surfaced to clients in strict mode;
// the default policy is to drop failed operations silently.
const (
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeMessageNotFound = "message_not_found"
	ErrCodeUserNotFound    = "user_not_found"
	ErrCodeBadRequest      = "bad_request"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrMessageNotFound = errors.New("message not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBadRequest      = errors.New("bad request")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
