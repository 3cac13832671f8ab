package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps any transport-level failure reaching the server.
	ErrUnavailable = errors.New("server unavailable")
	// ErrForbidden is returned when the server rejects an admin-scoped call.
	ErrForbidden = errors.New("관리자 권한이 없습니다")
)

// APIError is a non-2xx response from the server. Detail carries the
// server-supplied message when present; callers surface it to the user in
// preference to a generic failure string.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server error %d", e.StatusCode)
}

// UserMessage returns the text to show the user for a failed write:
// the server detail if the error carries one, else the provided fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
