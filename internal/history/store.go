package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"subber/internal/config"
	"subber/internal/matcher"
)

// Run summarizes one recorded matching run.
type Run struct {
	ID                string
	Directory         string
	Threshold         float64
	CreatedAt         time.Time
	ExactCount        int
	CloseCount        int
	UnmatchedMedia    int
	UnmatchedCaptions int
}

// PairRecord is one persisted exact or close pair.
type PairRecord struct {
	Kind        string
	MediaPath   string
	CaptionPath string
	Score       float64
}

// ErrRunNotFound reports an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    directory TEXT NOT NULL,
    threshold REAL NOT NULL,
    created_at TEXT NOT NULL,
    exact_count INTEGER NOT NULL,
    close_count INTEGER NOT NULL,
    unmatched_media INTEGER NOT NULL,
    unmatched_captions INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_pairs (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    kind TEXT NOT NULL,
    media_path TEXT NOT NULL,
    caption_path TEXT NOT NULL,
    score REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_run_pairs_run ON run_pairs(run_id, position);
`

// Open initializes or connects to the history database under the
// configured log directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
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

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun persists a report summary plus its exact and close pairs.
func (s *Store) RecordRun(ctx context.Context, directory string, threshold float64, report *matcher.Report) (*Run, error) {
	run := &Run{
		ID:                uuid.NewString(),
		Directory:         directory,
		Threshold:         threshold,
		CreatedAt:         time.Now().UTC(),
		ExactCount:        len(report.Exact),
		CloseCount:        len(report.Close),
		UnmatchedMedia:    len(report.UnmatchedMedia),
		UnmatchedCaptions: len(report.UnmatchedCaptions),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, directory, threshold, created_at,
            exact_count, close_count, unmatched_media, unmatched_captions
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Directory, run.Threshold, run.CreatedAt.Format(time.RFC3339Nano),
		run.ExactCount, run.CloseCount, run.UnmatchedMedia, run.UnmatchedCaptions,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	position := 0
	insertPair := func(kind, mediaPath, captionPath string, score float64) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO run_pairs (run_id, position, kind, media_path, caption_path, score)
             VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, position, kind, mediaPath, captionPath, score,
		)
		position++
		return err
	}
	for _, p := range report.Exact {
		if err := insertPair("exact", p.Media.Path, p.Caption.Path, 1); err != nil {
			return nil, fmt.Errorf("insert exact pair: %w", err)
		}
	}
	for _, p := range report.Close {
		if err := insertPair("close", p.Media.Path, p.Caption.Path, p.Score); err != nil {
			return nil, fmt.Errorf("insert close pair: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, directory, threshold, created_at,
                exact_count, close_count, unmatched_media, unmatched_captions
         FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun loads one run and its persisted pairs.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, []PairRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, directory, threshold, created_at,
                exact_count, close_count, unmatched_media, unmatched_captions
         FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, media_path, caption_path, score
         FROM run_pairs WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("query pairs: %w", err)
	}
	defer rows.Close()

	var pairs []PairRecord
	for rows.Next() {
		var p PairRecord
		if err := rows.Scan(&p.Kind, &p.MediaPath, &p.CaptionPath, &p.Score); err != nil {
			return nil, nil, fmt.Errorf("scan pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	return &run, pairs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var createdAt string
	err := row.Scan(&run.ID, &run.Directory, &run.Threshold, &createdAt,
		&run.ExactCount, &run.CloseCount, &run.UnmatchedMedia, &run.UnmatchedCaptions)
	if err != nil {
		return Run{}, err
	}
	parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt)
	if parseErr != nil {
		return Run{}, fmt.Errorf("parse run timestamp: %w", parseErr)
	}
	run.CreatedAt = parsed
	return run, nil
}
