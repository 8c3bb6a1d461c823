package domain

import "errors"

var (
	// ErrNotFound signals a lookup or delete for a string that is not stored.
	ErrNotFound = errors.New("string not found")
	// ErrAlreadyExists signals a create for a string whose identifier is already stored.
	ErrAlreadyExists = errors.New("string already exists")
	// ErrInvalidInput signals a missing or wrong-typed value at creation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidFilter signals a malformed filter parameter.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrEmptyQuery signals a blank natural-language query.
	ErrEmptyQuery = errors.New("empty query")
)
