package history

import (
	"context"
	"log/slog"

	"github.com/HarshDhiman001/site-plus/internal/report"
	"github.com/HarshDhiman001/site-plus/internal/storage"
)

// Service joins the remote store and the local cache into one history
// surface. Signed-in users (userID > 0) read from the store with the cache
// as fallback; anonymous visitors use the cache alone.
//
// Appends are best-effort everywhere: history must never block a completed
// analysis from reaching the user, so persistence failures are logged and
// swallowed.
type Service struct {
	store *storage.Store
	cache *Cache
}

// NewService creates a history Service over the given store and cache.
func NewService(store *storage.Store, cache *Cache) *Service {
	return &Service{store: store, cache: cache}
}

// Append records a completed report in the user's history. Both the store
// write (for signed-in users) and the cache mirror are fire-and-forget.
func (s *Service) Append(ctx context.Context, userID int64, rep *report.Report) {
	if userID > 0 {
		if err := s.store.AppendAudit(ctx, userID, rep); err != nil {
			slog.Error("failed to append audit to store", "user_id", userID, "error", err)
		}
	}
	if err := s.cache.Append(userID, rep); err != nil {
		slog.Error("failed to append audit to local cache", "user_id", userID, "error", err)
	}
}

// ListRecent returns the most recent reports for the user, newest first,
// never more than the history cap. When the store has nothing for a
// signed-in user (or fails), the local cache answers instead.
func (s *Service) ListRecent(ctx context.Context, userID int64, limit int) []report.Report {
	if limit <= 0 || limit > storage.MaxAuditHistory {
		limit = storage.MaxAuditHistory
	}

	if userID > 0 {
		reports, err := s.store.ListRecentAudits(ctx, userID, limit)
		if err != nil {
			slog.Error("failed to list audits from store", "user_id", userID, "error", err)
		} else if len(reports) > 0 {
			return reports
		}
	}

	reports, err := s.cache.List(userID)
	if err != nil {
		slog.Error("failed to read local history cache", "user_id", userID, "error", err)
		return nil
	}
	if len(reports) > limit {
		reports = reports[:limit]
	}
	return reports
}
