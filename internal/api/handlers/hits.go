package handlers

import (
	"net/http"
	"strings"

	"github.com/HarshDhiman001/site-plus/internal/counter"
)

// GetHitCount handles GET /api/hits?url=. It returns how many times the URL
// has been audited across all users, 0 for never-audited URLs.
func GetHitCount(rec *counter.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := strings.TrimSpace(r.URL.Query().Get("url"))
		if url == "" {
			writeError(w, http.StatusBadRequest, "Missing url parameter")
			return
		}

		writeJSON(w, http.StatusOK, map[string]int64{
			"count": rec.HitCount(r.Context(), url),
		})
	}
}
