package store

import (
	"database/sql"
	"iter"

	"app-registry/internal/models"
)

// Cursor is a single-pass view over a SelectAll result
type Cursor struct {
	rows     *sql.Rows
	consumed bool
}

func newCursor(rows *sql.Rows) *Cursor {
	return &Cursor{rows: rows}
}

// Entries yields rows lazily. The rows are released when iteration ends;
// ranging again yields ErrCursorConsumed once.
func (c *Cursor) Entries() iter.Seq2[models.Entry, error] {
	return func(yield func(models.Entry, error) bool) {
		if c.consumed {
			yield(models.Entry{}, opError(opSelectAll, ErrCursorConsumed))
			return
		}
		c.consumed = true
		defer c.rows.Close()

		for c.rows.Next() {
			var name, path sql.NullString
			if err := c.rows.Scan(&name, &path); err != nil {
				yield(models.Entry{}, opError(opSelectAll, err))
				return
			}
			if !yield(models.Entry{Name: name.String, Path: path.String}, nil) {
				return
			}
		}
		if err := c.rows.Err(); err != nil {
			yield(models.Entry{}, opError(opSelectAll, err))
		}
	}
}

// Collect drains the cursor, stopping at the first error
func (c *Cursor) Collect() ([]models.Entry, error) {
	var entries []models.Entry
	for entry, err := range c.Entries() {
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Close releases an abandoned cursor
func (c *Cursor) Close() error {
	c.consumed = true
	return c.rows.Close()
}
