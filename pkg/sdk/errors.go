package faqdex

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is() to check.
var (
	// ErrRecordNotFound signals a missing record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrTurnInFlight signals a rejected concurrent turn for the session.
	ErrTurnInFlight = errors.New("turn already in flight")
	// ErrUnauthorized signals a missing or invalid API key.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadRequest signals a request the server rejected as invalid.
	ErrBadRequest = errors.New("bad request")
)

// APIError carries the server's error response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("faqdex: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes to sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 404:
		return ErrRecordNotFound
	case 429:
		return ErrTurnInFlight
	case 401:
		return ErrUnauthorized
	case 400:
		return ErrBadRequest
	default:
		return nil
	}
}
