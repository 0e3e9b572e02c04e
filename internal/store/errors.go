package store

import (
	"errors"

	"app-registry/internal/models"
)

var (
	// ErrNotFound is the lookup miss; it classifies as models.NotFound
	ErrNotFound = models.ErrNotFound
	// ErrUnavailable is returned by every call on a store that failed to open
	ErrUnavailable = errors.New("store unavailable")
	// ErrCursorConsumed is yielded when a cursor is ranged a second time
	ErrCursorConsumed = errors.New("cursor already consumed")
	ErrClosed         = errors.New("store closed")
)

// Error ties a failure to the store operation that produced it
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "store " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
