package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store is a SQLite catalog of scanned checkplots. It records what each
// scan found so manifests can be regenerated from filtered subsets
// without re-reading the image directory.
type Store struct {
	*sql.DB
}

// Open creates or opens the catalog database at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging catalog: %w", err)
	}

	s := &Store{DB: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory catalog (useful for testing).
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory catalog: %w", err)
	}
	s := &Store{DB: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS scan_runs (
    id TEXT PRIMARY KEY,
    scanned_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    root_dir TEXT NOT NULL,
    nfiles INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS checkplots (
    run_id TEXT NOT NULL REFERENCES scan_runs(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    file TEXT NOT NULL,
    objectid TEXT NOT NULL,
    size INTEGER NOT NULL,
    mtime TIMESTAMP NOT NULL,
    PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_checkplots_objectid ON checkplots(objectid);
`

// RecordScan stores the result of a scan as a new run and returns the
// run id.
func (s *Store) RecordScan(ctx context.Context, rootDir string, entries []ScannedEntry) (string, error) {
	runID := uuid.New().String()

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO scan_runs (id, root_dir, nfiles) VALUES (?, ?, ?)`,
		runID, rootDir, len(entries),
	); err != nil {
		return "", fmt.Errorf("inserting scan run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO checkplots (run_id, position, file, objectid, size, mtime) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, runID, i, e.File, e.ObjectID, e.Size, e.ModTime.UTC()); err != nil {
			return "", fmt.Errorf("inserting checkplot %s: %w", e.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing scan: %w", err)
	}
	return runID, nil
}

// LatestRun returns the id of the most recent scan run, or sql.ErrNoRows
// when the catalog is empty.
func (s *Store) LatestRun(ctx context.Context) (string, error) {
	var id string
	err := s.QueryRowContext(ctx,
		`SELECT id FROM scan_runs ORDER BY scanned_at DESC, rowid DESC LIMIT 1`).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Filter selects checkplots from a recorded scan run.
type Filter struct {
	RunID          string     // empty = latest run
	ObjectGlob     string     // GLOB pattern on objectid, e.g. "HAT-579-*"
	ModifiedAfter  *time.Time // inclusive lower bound on mtime
	ModifiedBefore *time.Time // inclusive upper bound on mtime
	Limit          int        // 0 = no limit
}

// Query returns the checkplots of a run matching the filter, preserving
// scan order so the filtered manifest navigates in the same order as
// the full one.
func (s *Store) Query(ctx context.Context, f Filter) ([]ScannedEntry, error) {
	runID := f.RunID
	if runID == "" {
		var err error
		runID, err = s.LatestRun(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving latest run: %w", err)
		}
	}

	clauses := []string{"run_id = ?"}
	args := []any{runID}

	if f.ObjectGlob != "" {
		clauses = append(clauses, "objectid GLOB ?")
		args = append(args, f.ObjectGlob)
	}
	if f.ModifiedAfter != nil {
		clauses = append(clauses, "mtime >= ?")
		args = append(args, f.ModifiedAfter.UTC())
	}
	if f.ModifiedBefore != nil {
		clauses = append(clauses, "mtime <= ?")
		args = append(args, f.ModifiedBefore.UTC())
	}

	query := fmt.Sprintf(
		`SELECT file, objectid, size, mtime FROM checkplots WHERE %s ORDER BY position`,
		strings.Join(clauses, " AND "))
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying checkplots: %w", err)
	}
	defer rows.Close()

	var entries []ScannedEntry
	for rows.Next() {
		var e ScannedEntry
		if err := rows.Scan(&e.File, &e.ObjectID, &e.Size, &e.ModTime); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
