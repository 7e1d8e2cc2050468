package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kawa454/otoshi/internal/logging"
	_ "modernc.org/sqlite" // SQLite driver
)

var ErrEmptyPath = errors.New("history: database path is empty")

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS downloads (
	id          TEXT PRIMARY KEY,
	url         TEXT NOT NULL,
	filename    TEXT NOT NULL,
	size_bytes  INTEGER NOT NULL,
	status_code INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_downloads_created_at ON downloads(created_at);
`

// Entry is one recorded download.
type Entry struct {
	ID         string
	URL        string
	Filename   string
	Size       int64
	StatusCode int
	CreatedAt  time.Time
}

// Log is an append-only record of completed downloads backed by SQLite.
// It implements download.Recorder.
type Log struct {
	db     *sql.DB
	logger logging.Logger
}

// Open opens (creating if needed) the history database at path and applies
// the schema.
func Open(path string, logger logging.Logger) (*Log, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply history schema: %w", err)
	}

	componentLogger := logger.With(logging.Field{Key: "component", Value: "history"})
	componentLogger.Debug("history database opened", logging.Field{Key: "path", Value: path})

	return &Log{db: db, logger: componentLogger}, nil
}

// Record appends one download to the log. Satisfies download.Recorder.
func (l *Log) Record(ctx context.Context, url, filename string, size int64, statusCode int) error {
	entry := Entry{
		ID:         uuid.NewString(),
		URL:        url,
		Filename:   filename,
		Size:       size,
		StatusCode: statusCode,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO downloads (id, url, filename, size_bytes, status_code, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.URL, entry.Filename, entry.Size, entry.StatusCode,
		entry.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert download record: %w", err)
	}

	l.logger.Debug("recorded download",
		logging.Field{Key: "id", Value: entry.ID},
		logging.Field{Key: "url", Value: url},
		logging.Field{Key: "size", Value: size})
	return nil
}

// List returns the most recent entries, newest first. limit <= 0 means a
// default of 20.
func (l *Log) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, url, filename, size_bytes, status_code, created_at
		 FROM downloads ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query downloads: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.URL, &e.Filename, &e.Size, &e.StatusCode, &createdAt); err != nil {
			return nil, fmt.Errorf("scan download row: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		e.CreatedAt = t
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate download rows: %w", err)
	}

	return entries, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// DB returns a reference to the underlying database (owned by Log).
func (l *Log) DB() *sql.DB {
	return l.db
}
