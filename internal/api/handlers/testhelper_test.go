package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/HarshDhiman001/site-plus/internal/ai"
	"github.com/HarshDhiman001/site-plus/internal/auth"
	"github.com/HarshDhiman001/site-plus/internal/counter"
	"github.com/HarshDhiman001/site-plus/internal/history"
	"github.com/HarshDhiman001/site-plus/internal/models"
	"github.com/HarshDhiman001/site-plus/internal/storage"
)

// newTestStore creates an in-memory SQLite store with migrations applied. It
// registers a cleanup function to close the database when the test completes.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	db, err := storage.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return storage.NewStore(db)
}

// testEnv bundles the wired services most handler tests need.
type testEnv struct {
	store  *storage.Store
	hist   *history.Service
	rec    *counter.Recorder
	tokens *auth.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newTestStore(t)
	cache, err := history.NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("creating cache: %v", err)
	}

	return &testEnv{
		store:  store,
		hist:   history.NewService(store, cache),
		rec:    counter.NewRecorder(store),
		tokens: auth.NewManager("test-secret", time.Hour),
	}
}

// seedTestUser inserts a user and returns it.
func seedTestUser(t *testing.T, store *storage.Store, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user, err := store.CreateUser(context.Background(), email, hash, "Test User")
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return user
}

// stubProvider returns a canned response for every prompt.
type stubProvider struct {
	name     string
	response string
	err      error
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Attempt(ctx context.Context, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

// minimalReportJSON is the smallest provider response that passes report
// validation.
const minimalReportJSON = `{
  "summary": "The site is in decent shape with a few fixable issues.",
  "overallScore": 82,
  "categories": [
    {
      "name": "SEO",
      "score": 82,
      "description": "Solid fundamentals.",
      "issues": [
        {"severity": "Warning", "message": "Missing meta description", "recommendation": "Add one"}
      ]
    }
  ]
}`

func newStubAI(response string) *ai.Service {
	return ai.NewService(&stubProvider{name: "stub", response: response})
}
