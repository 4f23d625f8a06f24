package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/HarshDhiman001/site-plus/internal/ai"
	"github.com/HarshDhiman001/site-plus/internal/api/handlers"
	"github.com/HarshDhiman001/site-plus/internal/auth"
	"github.com/HarshDhiman001/site-plus/internal/counter"
	"github.com/HarshDhiman001/site-plus/internal/history"
	"github.com/HarshDhiman001/site-plus/internal/pageprobe"
	"github.com/HarshDhiman001/site-plus/internal/storage"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(
	store *storage.Store,
	aiSvc *ai.Service,
	probe *pageprobe.Probe,
	hist *history.Service,
	rec *counter.Recorder,
	tokens *auth.Manager,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(tokens.Middleware)

	// API sub-router.
	r.Route("/api", func(api chi.Router) {
		api.Post("/analyze", handlers.Analyze(aiSvc, probe, hist, rec, store))

		api.Get("/history", handlers.GetHistory(hist))
		api.Get("/hits", handlers.GetHitCount(rec))
		api.Get("/regions", handlers.GetRegions())

		api.Post("/auth/register", handlers.Register(store, tokens))
		api.Post("/auth/login", handlers.Login(store, tokens))

		api.Post("/events", handlers.RecordEvent(store))
		api.Get("/analytics/summary", handlers.GetAnalyticsSummary(store))
	})

	return r
}
