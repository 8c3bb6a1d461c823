package strdex

import "github.com/kailas-cloud/strdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrAlreadyExists = domain.ErrAlreadyExists
	ErrInvalidInput  = domain.ErrInvalidInput
	ErrInvalidFilter = domain.ErrInvalidFilter
	ErrEmptyQuery    = domain.ErrEmptyQuery
)
