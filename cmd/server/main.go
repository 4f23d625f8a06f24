package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/HarshDhiman001/site-plus/internal/ai"
	"github.com/HarshDhiman001/site-plus/internal/api"
	"github.com/HarshDhiman001/site-plus/internal/auth"
	"github.com/HarshDhiman001/site-plus/internal/config"
	"github.com/HarshDhiman001/site-plus/internal/counter"
	"github.com/HarshDhiman001/site-plus/internal/history"
	"github.com/HarshDhiman001/site-plus/internal/pageprobe"
	"github.com/HarshDhiman001/site-plus/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data-dir", "./data", "path to data directory")
	flag.Parse()

	// Load .env if present so API keys can live next to the binary during
	// development. Missing file is fine.
	_ = godotenv.Load()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Ensure data directory exists.
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	// Open database with WAL mode and pragmas.
	db, err := storage.OpenDatabase(filepath.Join(*dataDir, "sitepulse.db"))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run schema migrations.
	if err := storage.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := storage.NewStore(db)

	// Local history cache, used for anonymous audits and as fallback when
	// the database read fails.
	cacheDir := cfg.History.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(*dataDir, "history")
	}
	cache, err := history.NewCache(cacheDir)
	if err != nil {
		slog.Error("failed to create history cache", "error", err)
		os.Exit(1)
	}

	// Assemble the provider chain in fallback order: OpenRouter primary,
	// Gemini secondary. A provider without a key is never constructed, so
	// the analyze endpoint reports missing configuration cleanly.
	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	var providers []ai.Provider
	if cfg.AI.OpenRouterAPIKey != "" {
		providers = append(providers, ai.NewOpenRouterProvider(cfg.AI.OpenRouterAPIKey, cfg.AI.OpenRouterModel, timeout))
		slog.Info("OpenRouter provider configured", "model", cfg.AI.OpenRouterModel)
	}
	if cfg.AI.GeminiAPIKey != "" {
		providers = append(providers, ai.NewGeminiProvider(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, timeout))
		slog.Info("Gemini provider configured", "model", cfg.AI.GeminiModel)
	}
	if len(providers) == 0 {
		slog.Warn("no provider API key configured, analysis requests will fail")
	}

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = randomSecret()
	}
	tokens := auth.NewManager(jwtSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	aiSvc := ai.NewService(providers...)
	hist := history.NewService(store, cache)
	rec := counter.NewRecorder(store)
	probe := pageprobe.New(0)

	router := api.NewRouter(store, aiSvc, probe, hist, rec, tokens)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// randomSecret generates a throwaway JWT secret for deployments that have
// not configured one. Sessions signed with it die with the process.
func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		slog.Error("failed to generate random secret", "error", err)
		os.Exit(1)
	}
	return hex.EncodeToString(buf)
}
