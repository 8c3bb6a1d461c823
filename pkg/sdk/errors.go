package strdex

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from API error codes. Use errors.Is() to check.
var (
	ErrNotFound      = errors.New("string not found")
	ErrAlreadyExists = errors.New("string already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrEmptyQuery    = errors.New("empty query")
)

// APIError carries the raw error response from the server.
// It unwraps to the matching sentinel error when the code is known.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("strdex API: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case "string_not_found":
		return ErrNotFound
	case "string_already_exists":
		return ErrAlreadyExists
	case "invalid_input":
		return ErrInvalidInput
	case "invalid_filter":
		return ErrInvalidFilter
	case "empty_query":
		return ErrEmptyQuery
	default:
		return nil
	}
}
