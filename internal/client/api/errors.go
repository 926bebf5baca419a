package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the backend rejects the credential.
	// By the time a caller sees it the local session has already been cleared
	// and the unauthorized handlers have run.
	ErrUnauthorized = errors.New("unauthorized - please login again")

	// ErrRequestFailed matches every *RequestFailedError.
	ErrRequestFailed = errors.New("request failed")

	// ErrUnavailable wraps transport failures where no response arrived.
	ErrUnavailable = errors.New("server unavailable")
)

// RequestFailedError is any non-2xx, non-401 response, or a success
// response missing the fields the caller requires.
type RequestFailedError struct {
	StatusCode int
	Message    string
}

// Error returns the message alone so it can be shown to the user verbatim.
func (e *RequestFailedError) Error() string {
	return e.Message
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

func fallbackMessage(status int) string {
	return fmt.Sprintf("request failed with status %d", status)
}
