package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; the journal is disposable, so a mismatch just asks the user to
// delete the file.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("journal path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// StartRun records a new run in the running state.
func (s *Store) StartRun(ctx context.Context, id, recordPath string, startedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, record_path, outcome, started_at) VALUES (?, ?, ?, ?)",
		id, recordPath, OutcomeRunning, startedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	return nil
}

// FinishRun records a run's terminal outcome and clip counts.
func (s *Store) FinishRun(ctx context.Context, id, outcome, message string, rendered, cached, failed int, finishedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE runs SET outcome = ?, message = ?, rendered = ?, cached = ?, failed = ?, finished_at = ? WHERE id = ?",
		outcome, message, rendered, cached, failed, finishedAt.UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// RecordClip upserts the status of one clip within a run.
func (s *Store) RecordClip(ctx context.Context, runID string, index int, status, detail string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO clips (run_id, idx, status, detail) VALUES (?, ?, ?, ?)
		 ON CONFLICT(run_id, idx) DO UPDATE SET status = excluded.status, detail = excluded.detail`,
		runID, index, status, detail,
	)
	if err != nil {
		return fmt.Errorf("record clip: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, record_path, outcome, message, rendered, cached, failed, started_at, finished_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var finished sql.NullTime
		if err := rows.Scan(&run.ID, &run.RecordPath, &run.Outcome, &run.Message,
			&run.Rendered, &run.Cached, &run.Failed, &run.StartedAt, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			run.FinishedAt = &t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunClips returns the clip statuses of a run in index order.
func (s *Store) RunClips(ctx context.Context, runID string) ([]Clip, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT run_id, idx, status, detail FROM clips WHERE run_id = ? ORDER BY idx", runID)
	if err != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}
	defer rows.Close()

	var clips []Clip
	for rows.Next() {
		var clip Clip
		if err := rows.Scan(&clip.RunID, &clip.Index, &clip.Status, &clip.Detail); err != nil {
			return nil, fmt.Errorf("scan clip: %w", err)
		}
		clips = append(clips, clip)
	}
	return clips, rows.Err()
}
