package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/HarshDhiman001/site-plus/internal/auth"
	"github.com/HarshDhiman001/site-plus/internal/models"
	"github.com/HarshDhiman001/site-plus/internal/storage"
)

type eventRequest struct {
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties"`
}

// RecordEvent handles POST /api/events. Client-side analytics events are
// accepted with a 202 and failures are only logged; the client never blocks
// on analytics.
func RecordEvent(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body eventRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			writeError(w, http.StatusBadRequest, "Event name is required")
			return
		}

		event := &models.AnalyticsEvent{
			Name:       body.Name,
			Properties: string(body.Properties),
		}
		if userID := auth.UserID(ctx); userID > 0 {
			event.UserID = &userID
		}

		if err := store.InsertEvent(ctx, event); err != nil {
			slog.Error("failed to insert analytics event", "name", body.Name, "error", err)
		}

		w.WriteHeader(http.StatusAccepted)
	}
}
