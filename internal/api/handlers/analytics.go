package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/HarshDhiman001/site-plus/internal/storage"
)

// sqliteDatetime matches the format of SQLite's datetime('now') default.
const sqliteDatetime = "2006-01-02 15:04:05"

// analyticsSummary is the body of GET /api/analytics/summary.
type analyticsSummary struct {
	AuditsToday  int64                `json:"auditsToday"`
	AverageScore float64              `json:"averageScore"`
	EventCounts  []storage.EventCount `json:"eventCounts"`
}

// GetAnalyticsSummary handles GET /api/analytics/summary. The three
// aggregates are independent queries, so they run concurrently.
func GetAnalyticsSummary(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startOfDay := time.Now().UTC().Truncate(24 * time.Hour).Format(sqliteDatetime)

		var summary analyticsSummary
		g, ctx := errgroup.WithContext(r.Context())

		g.Go(func() error {
			count, err := store.CountAuditsSince(ctx, startOfDay)
			summary.AuditsToday = count
			return err
		})
		g.Go(func() error {
			avg, err := store.AverageOverallScore(ctx)
			summary.AverageScore = avg
			return err
		})
		g.Go(func() error {
			counts, err := store.EventCounts(ctx, startOfDay)
			summary.EventCounts = counts
			return err
		})

		if err := g.Wait(); err != nil {
			slog.Error("failed to build analytics summary", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to build analytics summary")
			return
		}

		if summary.EventCounts == nil {
			summary.EventCounts = []storage.EventCount{}
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
