package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// IncrementHit bumps the global audit counter for the given sanitized key.
// The increment happens inside a single INSERT ... ON CONFLICT statement so
// concurrent callers never lose updates; there is no read-modify-write on
// the caller's side.
func (s *Store) IncrementHit(ctx context.Context, key, url string) error {
	if key == "" {
		return fmt.Errorf("empty hit key")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO url_hits (key, url, hits) VALUES (?, ?, 1)
		 ON CONFLICT(key) DO UPDATE SET
			hits       = hits + 1,
			updated_at = datetime('now')`,
		key, url,
	)
	if err != nil {
		return fmt.Errorf("incrementing hit counter: %w", err)
	}
	return nil
}

// GetHitCount returns the hit total for the given key, or 0 when the key
// has never been recorded.
func (s *Store) GetHitCount(ctx context.Context, key string) (int64, error) {
	var hits int64
	err := s.db.QueryRowContext(ctx,
		`SELECT hits FROM url_hits WHERE key = ?`, key,
	).Scan(&hits)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading hit counter: %w", err)
	}
	return hits, nil
}
