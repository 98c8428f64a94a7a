// Package history keeps a local SQLite log of fiolog exports.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id          TEXT NOT NULL UNIQUE,
    directory       TEXT NOT NULL,
    mode            TEXT NOT NULL,
    format          TEXT NOT NULL,
    output_path     TEXT NOT NULL,
    files           INTEGER NOT NULL DEFAULT 0,
    skipped_files   INTEGER NOT NULL DEFAULT 0,
    skipped_records INTEGER NOT NULL DEFAULT 0,
    row_count       INTEGER NOT NULL DEFAULT 0,
    column_count    INTEGER NOT NULL DEFAULT 0,
    started_at      TEXT NOT NULL,
    completed_at    TEXT NOT NULL,
    duration_ms     INTEGER NOT NULL,
    hostname        TEXT NOT NULL DEFAULT '',
    platform        TEXT NOT NULL DEFAULT '',
    created_at      TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`

// timeLayout is fixed-width so started_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store provides SQLite-backed storage for run records.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the history database at dbPath and runs migrations.
func OpenStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.New().String()
}

// Insert stores a run record, assigning a RunID if it has none, and
// returns the record as stored.
func (s *Store) Insert(r RunRecord) (RunRecord, error) {
	if r.RunID == "" {
		r.RunID = NewRunID()
	}
	res, err := s.db.Exec(`
		INSERT INTO runs (
			run_id, directory, mode, format, output_path,
			files, skipped_files, skipped_records, row_count, column_count,
			started_at, completed_at, duration_ms,
			hostname, platform
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Directory, r.Mode, r.Format, r.OutputPath,
		r.Files, r.SkippedFiles, r.SkippedRecords, r.Rows, r.Columns,
		r.StartedAt.UTC().Format(timeLayout), r.CompletedAt.UTC().Format(timeLayout), r.DurationMs,
		r.Hostname, r.Platform,
	)
	if err != nil {
		return r, fmt.Errorf("insert run record: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		r.ID = id
	}
	return r, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, directory, mode, format, output_path,
		       files, skipped_files, skipped_records, row_count, column_count,
		       started_at, completed_at, duration_ms,
		       hostname, platform
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var startedAt, completedAt string
		if err := rows.Scan(
			&r.ID, &r.RunID, &r.Directory, &r.Mode, &r.Format, &r.OutputPath,
			&r.Files, &r.SkippedFiles, &r.SkippedRecords, &r.Rows, &r.Columns,
			&startedAt, &completedAt, &r.DurationMs,
			&r.Hostname, &r.Platform,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if t, err := time.Parse(timeLayout, startedAt); err == nil {
			r.StartedAt = t
		}
		if t, err := time.Parse(timeLayout, completedAt); err == nil {
			r.CompletedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
