// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal records conversion runs in a local SQLite database so
// the history command can list what was converted, when, and where the
// output went. The journal is best effort: callers treat failures as
// warnings, never as conversion failures.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pocketmod/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TEXT NOT NULL,
	input      TEXT NOT NULL,
	output     TEXT NOT NULL,
	files      INTEGER NOT NULL,
	pages      INTEGER NOT NULL,
	sheets     INTEGER NOT NULL
);`

// Journal is a handle to the run history database.
type Journal struct {
	db *sql.DB
}

// DefaultPath returns the journal location under the user's home
// directory, or a working-directory fallback when no home is available.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pocketmod-history.db"
	}
	return filepath.Join(home, ".local", "share", "pocketmod", "history.db")
}

// Open opens or creates the journal database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: creating directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("journal: opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close releases the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends one run to the journal.
func (j *Journal) Record(ctx context.Context, run types.RunRecord) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, input, output, files, pages, sheets) VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339), run.Input, run.Output,
		run.Files, run.Pages, run.Sheets)
	if err != nil {
		return fmt.Errorf("journal: recording run: %w", err)
	}
	return nil
}

// Recent returns up to n runs, most recent first.
func (j *Journal) Recent(ctx context.Context, n int) ([]types.RunRecord, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, started_at, input, output, files, pages, sheets
		 FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("journal: querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var run types.RunRecord
		var started string
		if err := rows.Scan(&run.ID, &started, &run.Input, &run.Output,
			&run.Files, &run.Pages, &run.Sheets); err != nil {
			return nil, fmt.Errorf("journal: scanning run: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, started); err == nil {
			run.StartedAt = ts
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: reading runs: %w", err)
	}
	return runs, nil
}
