package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned in place of the original failure after the
// expired-session interceptor has already terminated the session, notified
// the user and redirected to the login screen. Callers must treat it as
// handled and must not report it again.
var ErrSessionExpired = errors.New("session expired")

// Error is a non-2xx response from the backend. Message is the body's
// "message" field when the body is a structured object, otherwise the raw
// body text (possibly empty).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// *Error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
