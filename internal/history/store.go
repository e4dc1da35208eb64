// Package history tracks which listings previous runs already saw, so
// repeat scrapes can be filtered down to genuinely new postings.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"zimjobs/internal/models"
)

type Store struct {
	pool *sql.DB
}

// Open creates or opens the history database at path.
func Open(path string) (*Store, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(1) // sqlite wants a single writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	s := &Store{pool: pool}
	if err := s.migrate(); err != nil {
		_ = pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.pool == nil {
		return nil
	}
	return s.pool.Close()
}

func (s *Store) migrate() error {
	tx, err := s.pool.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS seen_jobs (
  content_hash TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  source_site TEXT NOT NULL,
  first_seen TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// MarkSeen records a listing and reports whether it was new. Identity
// is the content hash over title, company, and source site, so the
// same posting re-scraped on a later day (with a fresh run ID) still
// counts as seen.
func (s *Store) MarkSeen(ctx context.Context, l models.Listing, now time.Time) (bool, error) {
	res, err := s.pool.ExecContext(ctx, `
INSERT OR IGNORE INTO seen_jobs (content_hash, title, company, source_site, first_seen)
VALUES (?, ?, ?, ?, ?);
`, l.ContentHash(), l.Title, l.Company, l.SourceSite, now.UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}

// FilterNew marks every listing as seen and returns only those not
// present before this run.
func (s *Store) FilterNew(ctx context.Context, listings []models.Listing, now time.Time) ([]models.Listing, error) {
	var fresh []models.Listing
	for _, l := range listings {
		isNew, err := s.MarkSeen(ctx, l, now)
		if err != nil {
			return nil, err
		}
		if isNew {
			fresh = append(fresh, l)
		}
	}
	return fresh, nil
}

// Count returns the number of distinct listings ever recorded.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM seen_jobs;`).Scan(&n)
	return n, err
}
