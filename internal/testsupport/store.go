package testsupport

import (
	"context"
	"testing"

	"worddumb/internal/config"
	"worddumb/internal/uploads"
)

// MustOpenStore opens an uploads.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *uploads.Store {
	t.Helper()

	store, err := uploads.Open(cfg)
	if err != nil {
		t.Fatalf("uploads.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewJob records a pending upload job for tests using the provided store.
func NewJob(t testing.TB, store *uploads.Store, bookID int64, asin, title string) *uploads.Job {
	t.Helper()

	job, err := store.Record(context.Background(), bookID, asin, "/library/"+title, title)
	if err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return job
}
