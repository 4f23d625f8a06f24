package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/HarshDhiman001/site-plus/internal/ai"
	"github.com/HarshDhiman001/site-plus/internal/auth"
	"github.com/HarshDhiman001/site-plus/internal/counter"
	"github.com/HarshDhiman001/site-plus/internal/history"
	"github.com/HarshDhiman001/site-plus/internal/models"
	"github.com/HarshDhiman001/site-plus/internal/pageprobe"
	"github.com/HarshDhiman001/site-plus/internal/report"
	"github.com/HarshDhiman001/site-plus/internal/storage"
)

// analyzeRequest is the body of POST /api/analyze.
type analyzeRequest struct {
	Content string `json:"content"`
	Kind    string `json:"kind"`
	Region  string `json:"region"`
}

// probeTimeout bounds the optional page fetch so a slow target site cannot
// stall the whole analysis.
const probeTimeout = 12 * time.Second

// Analyze handles POST /api/analyze. It runs the full audit pipeline: an
// optional page probe for URL audits, the provider chain, then best-effort
// history, hit-counter, and analytics writes that never fail the response.
func Analyze(aiSvc *ai.Service, probe *pageprobe.Probe, hist *history.Service, rec *counter.Recorder, store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		body.Content = strings.TrimSpace(body.Content)
		if body.Content == "" {
			writeError(w, http.StatusBadRequest, "Content is required")
			return
		}

		var kind report.AnalysisKind
		switch strings.ToLower(body.Kind) {
		case "", "url":
			kind = report.KindURL
		case "code":
			kind = report.KindCode
		default:
			writeError(w, http.StatusBadRequest, "Kind must be \"url\" or \"code\"")
			return
		}

		// The region list is closed; anything else would flow verbatim into
		// the prompt and onto the stored report. Empty means the default.
		if body.Region != "" && !report.IsSupportedRegion(body.Region) {
			writeError(w, http.StatusBadRequest, "Unsupported region")
			return
		}

		// Fetch the target page for ground-truth context. Strictly
		// best-effort: unreachable sites still get an audit.
		var pageContext string
		if kind == report.KindURL && probe != nil {
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			text, err := probe.Fetch(probeCtx, body.Content)
			cancel()
			if err != nil {
				slog.Warn("page probe failed, auditing without page context",
					"url", body.Content, "error", err)
			} else {
				pageContext = text
			}
		}

		rep, err := aiSvc.Analyze(ctx, ai.Request{
			Content:     body.Content,
			Kind:        kind,
			Region:      body.Region,
			PageContext: pageContext,
		})
		if err != nil {
			status, message := analyzeErrorStatus(err)
			writeError(w, status, message)
			return
		}

		userID := auth.UserID(ctx)
		hist.Append(ctx, userID, rep)
		rec.RecordHit(ctx, rep.URLOrTitle, string(kind))
		recordAuditEvent(ctx, store, userID, kind, rep)

		writeJSON(w, http.StatusOK, rep)
	}
}

// analyzeErrorStatus maps analysis pipeline errors to HTTP responses. The
// upstream provider message is passed through verbatim so users see the
// real reason (quota, bad key) instead of a generic failure.
func analyzeErrorStatus(err error) (int, string) {
	var provErr *ai.ProviderError
	switch {
	case errors.Is(err, ai.ErrNoProvider):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, ai.ErrUnparsable):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &provErr):
		return http.StatusBadGateway, provErr.Error()
	default:
		return http.StatusInternalServerError, "Analysis failed"
	}
}

// recordAuditEvent logs an audit_completed analytics event. Best-effort.
func recordAuditEvent(ctx context.Context, store *storage.Store, userID int64, kind report.AnalysisKind, rep *report.Report) {
	props, _ := json.Marshal(map[string]any{
		"kind":   string(kind),
		"region": rep.Region,
		"score":  rep.OverallScore,
	})

	event := &models.AnalyticsEvent{Name: "audit_completed", Properties: string(props)}
	if userID > 0 {
		event.UserID = &userID
	}
	if err := store.InsertEvent(ctx, event); err != nil {
		slog.Error("failed to record audit event", "error", err)
	}
}
