package uploads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"worddumb/internal/config"
)

// Status values a pending upload job can hold.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ErrNotFound reports a missing upload job.
var ErrNotFound = errors.New("upload job not found")

// Job is the bookkeeping record for one host upload handed off with a
// continuation.
type Job struct {
	ID           string
	BookID       int64
	ASIN         string
	BookPath     string
	Title        string
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Store persists pending upload jobs in SQLite. A flock sidecar file keeps a
// second process from writing the same database.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the uploads database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.StagingDir, "uploads.db")
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire uploads lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("uploads database %s is in use by another process", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the process lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Record inserts a pending job and returns its generated identifier.
func (s *Store) Record(ctx context.Context, bookID int64, asin, bookPath, title string) (*Job, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO upload_jobs (id, book_id, asin, book_path, title, status, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, bookID, asin, bookPath, title, StatusPending,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert upload job: %w", err)
	}
	return s.Get(ctx, id)
}

// Complete marks a job as finished.
func (s *Store) Complete(ctx context.Context, id string) error {
	return s.transition(ctx, id, StatusCompleted, "")
}

// Fail marks a job as failed with a diagnostic message.
func (s *Store) Fail(ctx context.Context, id, message string) error {
	return s.transition(ctx, id, StatusFailed, message)
}

func (s *Store) transition(ctx context.Context, id, status, message string) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE upload_jobs SET status = ?, error_message = ?, updated_at = ? WHERE id = ?`,
		status, message, time.Now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return fmt.Errorf("update upload job: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Get returns one job by identifier.
func (s *Store) Get(ctx context.Context, id string) (*Job, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, book_id, asin, book_path, title, status, error_message, created_at, updated_at
         FROM upload_jobs WHERE id = ?`,
		id,
	)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return job, err
}

// List returns every job, newest first.
func (s *Store) List(ctx context.Context) ([]*Job, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, book_id, asin, book_path, title, status, error_message, created_at, updated_at
         FROM upload_jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query upload jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (*Job, error) {
	var job Job
	var errMsg sql.NullString
	var created, updated string
	if err := row.Scan(&job.ID, &job.BookID, &job.ASIN, &job.BookPath, &job.Title, &job.Status, &errMsg, &created, &updated); err != nil {
		return nil, err
	}
	job.ErrorMessage = errMsg.String
	if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
		job.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339Nano, updated); err == nil {
		job.UpdatedAt = ts
	}
	return &job, nil
}
