// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runlog persists a ledger of completed extract-book runs in a local
// SQLite database. The ledger is reporting only: nothing in the pipeline
// consults it to skip or resume work.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bookworm/pkg/types"
)

const dbFile = "bookworm.db"

// Store manages the run-ledger SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the ledger database at cfg.Dir/bookworm.db,
// creating the directory and schema as needed.
func NewStore(cfg types.LedgerConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		directory TEXT NOT NULL,
		output_path TEXT NOT NULL,
		discovered INTEGER NOT NULL,
		transcribed INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		duration_ms INTEGER NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one completed run and returns its ledger ID.
func (s *Store) Record(ctx context.Context, run types.Run) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (directory, output_path, discovered, transcribed, failed, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Directory, run.OutputPath, run.Discovered, run.Transcribed, run.Failed,
		run.StartedAt.UTC().Format(time.RFC3339), run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// List returns up to limit runs, newest first. A non-positive limit uses the
// store's configured maximum.
func (s *Store) List(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, directory, output_path, discovered, transcribed, failed, started_at, duration_ms
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var run types.Run
		var startedAt string
		var durationMS int64
		if err := rows.Scan(&run.ID, &run.Directory, &run.OutputPath,
			&run.Discovered, &run.Transcribed, &run.Failed, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at %q: %w", startedAt, err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
