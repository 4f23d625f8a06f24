package handlers

import (
	"net/http"
	"strconv"

	"github.com/HarshDhiman001/site-plus/internal/auth"
	"github.com/HarshDhiman001/site-plus/internal/history"
)

// historyResponse is the body of GET /api/history.
type historyResponse struct {
	History []history.TrendedReport `json:"history"`
	Stats   history.Stats           `json:"stats"`
}

// GetHistory handles GET /api/history. Signed-in users get their stored
// audits; anonymous callers get the local cache. Each entry carries its
// score trend against the previous audit of the same site, plus aggregate
// stats over the window.
func GetHistory(hist *history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := history.CacheCap
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			limit = n
		}

		reports := hist.ListRecent(ctx, auth.UserID(ctx), limit)

		resp := historyResponse{
			History: history.DeriveTrends(reports),
			Stats:   history.DeriveStats(reports),
		}
		if resp.History == nil {
			resp.History = []history.TrendedReport{}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
