package db

import "errors"

// ErrSnapshotNotFound signals that no snapshot has been persisted yet.
var ErrSnapshotNotFound = errors.New("db: snapshot not found")

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
