package uploads

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"worddumb/internal/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.Default()
	base := t.TempDir()
	cfg.Paths.PluginDataDir = filepath.Join(base, "data")
	cfg.Paths.StagingDir = filepath.Join(base, "staging")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	store, err := Open(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenPlacesDatabaseInStagingDir(t *testing.T) {
	cfg := config.Default()
	base := t.TempDir()
	cfg.Paths.PluginDataDir = filepath.Join(base, "data")
	cfg.Paths.StagingDir = filepath.Join(base, "staging")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	store, err := Open(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(cfg.Paths.StagingDir, "uploads.db")); err != nil {
		t.Fatalf("database not in staging dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LogDir, "uploads.db")); !os.IsNotExist(err) {
		t.Fatal("database must not land beside log files")
	}
}

func TestRecordAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	job, err := store.Record(ctx, 42, "B01X", "/books/Book.kfx", "Book")
	if err != nil {
		t.Fatal(err)
	}
	if job.ID == "" {
		t.Fatal("expected generated job id")
	}
	if job.Status != StatusPending {
		t.Fatalf("status = %q", job.Status)
	}

	got, err := store.Get(ctx, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ASIN != "B01X" || got.BookID != 42 || got.BookPath != "/books/Book.kfx" {
		t.Fatalf("unexpected job %+v", got)
	}
}

func TestCompleteAndFail(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	job, err := store.Record(ctx, 1, "B01X", "/books/a.kfx", "A")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Complete(ctx, job.ID); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("status = %q", got.Status)
	}

	other, err := store.Record(ctx, 2, "B02Y", "/books/b.kfx", "B")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Fail(ctx, other.ID, "device unplugged"); err != nil {
		t.Fatal(err)
	}
	got, err = store.Get(ctx, other.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusFailed || got.ErrorMessage != "device unplugged" {
		t.Fatalf("unexpected job %+v", got)
	}
}

func TestTransitionUnknownJob(t *testing.T) {
	store := openTestStore(t)
	err := store.Complete(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		if _, err := store.Record(ctx, i, "ASIN", "/books/x.kfx", "X"); err != nil {
			t.Fatal(err)
		}
	}
	jobs, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
}
