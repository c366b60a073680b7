package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("gateway: record not found")
	ErrForbidden = errors.New("gateway: not authorized")
	ErrConflict  = errors.New("gateway: record in use")
)

// StatusError describes a non-success HTTP response from the backend. It
// unwraps to the sentinel matching its status code so callers can branch with
// errors.Is without inspecting codes themselves.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway: backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway: backend returned status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case 404:
		return ErrNotFound
	case 403:
		return ErrForbidden
	case 409:
		return ErrConflict
	default:
		return nil
	}
}
