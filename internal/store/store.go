package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"app-registry/internal/logger"
	"app-registry/internal/metrics"
	"app-registry/internal/models"
)

const (
	opInsert     = "insert"
	opDelete     = "delete"
	opUpdate     = "update"
	opSelectAll  = "select_all"
	opSelectPath = "select_path"
)

const schema = `CREATE TABLE IF NOT EXISTS applications (name TEXT, path TEXT)`

// Options tune a Store. The zero value deletes and updates every matching row.
type Options struct {
	MatchMode models.MatchMode
	Metrics   *metrics.Recorder
	Logger    logger.Logger
}

// Store is the SQLite-backed applications table
type Store struct {
	db      *sql.DB
	path    string
	mode    models.MatchMode
	metrics *metrics.Recorder
	logger  logger.Logger
	closed  bool
}

// Open creates or opens the database at path and ensures the applications
// table exists.
func Open(ctx context.Context, path string, opts Options) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}

	// One connection: the form is the only reader and writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create applications table: %w", err)
	}

	mode := opts.MatchMode
	if mode == "" {
		mode = models.MatchAll
	}
	log := opts.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}

	s := &Store{
		db:      db,
		path:    path,
		mode:    mode,
		metrics: opts.Metrics,
		logger:  log,
	}

	log.Debug("Store", "database opened", map[string]interface{}{
		"path":       path,
		"match_mode": string(mode),
	})
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) MatchMode() models.MatchMode {
	return s.mode
}

// Close releases the database handle. Calling it again is a no-op.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.logger.Debug("Store", "database closed", map[string]interface{}{"path": s.path})
	return s.db.Close()
}

// Shutdown lets the shutdown manager release the store
func (s *Store) Shutdown() error {
	return s.Close()
}

func (s *Store) Insert(ctx context.Context, name, path string) (err error) {
	defer s.observe(opInsert, time.Now(), &err)
	if s.closed {
		return opError(opInsert, ErrClosed)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO applications (name, path) VALUES (?, ?)`, name, path)
	return opError(opInsert, err)
}

// DeleteByName removes rows named name and reports how many went away
func (s *Store) DeleteByName(ctx context.Context, name string) (n int64, err error) {
	defer s.observe(opDelete, time.Now(), &err)
	if s.closed {
		return 0, opError(opDelete, ErrClosed)
	}

	query := `DELETE FROM applications WHERE name = ?`
	if s.mode == models.MatchFirst {
		query = `DELETE FROM applications WHERE rowid = (SELECT rowid FROM applications WHERE name = ? LIMIT 1)`
	}
	return s.exec(ctx, opDelete, query, name)
}

// UpdateByOldName rewrites rows named oldName to the new name and path
func (s *Store) UpdateByOldName(ctx context.Context, oldName, newName, newPath string) (n int64, err error) {
	defer s.observe(opUpdate, time.Now(), &err)
	if s.closed {
		return 0, opError(opUpdate, ErrClosed)
	}

	query := `UPDATE applications SET name = ?, path = ? WHERE name = ?`
	if s.mode == models.MatchFirst {
		query = `UPDATE applications SET name = ?, path = ? WHERE rowid = (SELECT rowid FROM applications WHERE name = ? LIMIT 1)`
	}
	return s.exec(ctx, opUpdate, query, newName, newPath, oldName)
}

// SelectAll opens a cursor over every row in store order
func (s *Store) SelectAll(ctx context.Context) (c *Cursor, err error) {
	defer s.observe(opSelectAll, time.Now(), &err)
	if s.closed {
		return nil, opError(opSelectAll, ErrClosed)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, path FROM applications`)
	if err != nil {
		return nil, opError(opSelectAll, err)
	}
	return newCursor(rows), nil
}

// SelectPathByName returns the path of the first row named name
func (s *Store) SelectPathByName(ctx context.Context, name string) (path string, err error) {
	defer s.observe(opSelectPath, time.Now(), &err)
	if s.closed {
		return "", opError(opSelectPath, ErrClosed)
	}

	var value sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT path FROM applications WHERE name = ? LIMIT 1`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", opError(opSelectPath, ErrNotFound)
	}
	if err != nil {
		return "", opError(opSelectPath, err)
	}
	return value.String, nil
}

// Entries drains SelectAll into a slice
func (s *Store) Entries(ctx context.Context) ([]models.Entry, error) {
	cursor, err := s.SelectAll(ctx)
	if err != nil {
		return nil, err
	}
	return cursor.Collect()
}

func (s *Store) exec(ctx context.Context, op, query string, args ...interface{}) (int64, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, opError(op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, opError(op, err)
	}
	return n, nil
}

func (s *Store) observe(op string, start time.Time, err *error) {
	s.metrics.Observe(op, start, *err)
}
