// Package counter tracks how many times each URL has been audited across
// all users, for display as social proof.
package counter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/HarshDhiman001/site-plus/internal/storage"
)

// Recorder owns the global per-URL hit counters. Writes are fire-and-forget
// and reads degrade to zero: the counter must never break an audit.
type Recorder struct {
	store *storage.Store
}

// NewRecorder creates a Recorder over the given store.
func NewRecorder(store *storage.Store) *Recorder {
	return &Recorder{store: store}
}

// RecordHit bumps the counter for url. Failures are logged, never returned.
func (r *Recorder) RecordHit(ctx context.Context, url, kind string) {
	key := Sanitize(url)
	if key == "" {
		return
	}
	if err := r.store.IncrementHit(ctx, key, url); err != nil {
		slog.Error("failed to record url hit", "url", url, "kind", kind, "error", err)
	}
}

// HitCount returns the audit total for url, or 0 on any failure or when the
// URL has never been audited.
func (r *Recorder) HitCount(ctx context.Context, url string) int64 {
	key := Sanitize(url)
	if key == "" {
		return 0
	}
	count, err := r.store.GetHitCount(ctx, key)
	if err != nil {
		slog.Error("failed to read url hit count", "url", url, "error", err)
		return 0
	}
	return count
}

// Sanitize canonicalizes a URL into a counter key: lowercase, scheme and
// trailing slashes stripped, every remaining non-alphanumeric rune replaced
// with '_'. Scheme stripping means http and https variants of a site share
// one counter. The mapping is still lossy (query strings, fragments), so
// distinct URLs can collide; callers tolerate the resulting over- or
// undercount as a known limitation.
func Sanitize(url string) string {
	s := strings.ToLower(strings.TrimSpace(url))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimRight(s, "/")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
