package handlers

import (
	"net/http"

	"github.com/HarshDhiman001/site-plus/internal/report"
)

// GetRegions handles GET /api/regions. The first entry is the default.
func GetRegions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"default": report.DefaultRegion,
			"regions": report.Regions,
		})
	}
}
