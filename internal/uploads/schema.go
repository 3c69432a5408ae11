package uploads

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS upload_jobs (
    id TEXT PRIMARY KEY,
    book_id INTEGER NOT NULL,
    asin TEXT NOT NULL,
    book_path TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    error_message TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_upload_jobs_status ON upload_jobs (status);
`

func (s *Store) applySchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}
