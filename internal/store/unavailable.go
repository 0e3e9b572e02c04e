package store

import (
	"context"

	"app-registry/internal/models"
)

// Unavailable stands in for a store that could not be opened. Every call
// fails with ErrUnavailable so the form keeps running without persistence.
type Unavailable struct {
	Cause error
}

func (u Unavailable) Insert(ctx context.Context, name, path string) error {
	return opError(opInsert, ErrUnavailable)
}

func (u Unavailable) DeleteByName(ctx context.Context, name string) (int64, error) {
	return 0, opError(opDelete, ErrUnavailable)
}

func (u Unavailable) UpdateByOldName(ctx context.Context, oldName, newName, newPath string) (int64, error) {
	return 0, opError(opUpdate, ErrUnavailable)
}

func (u Unavailable) SelectAll(ctx context.Context) (*Cursor, error) {
	return nil, opError(opSelectAll, ErrUnavailable)
}

func (u Unavailable) SelectPathByName(ctx context.Context, name string) (string, error) {
	return "", opError(opSelectPath, ErrUnavailable)
}

func (u Unavailable) Entries(ctx context.Context) ([]models.Entry, error) {
	return nil, opError(opSelectAll, ErrUnavailable)
}

func (u Unavailable) Close() error {
	return nil
}

func (u Unavailable) Shutdown() error {
	return nil
}
