package counter

import (
	"context"
	"sync"
	"testing"

	"github.com/HarshDhiman001/site-plus/internal/storage"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()

	db, err := storage.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return NewRecorder(storage.NewStore(db))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://Example.com", "example_com"},
		{"http://example.com/", "example_com"},
		{"https://example.com", "example_com"},
		{"example.com/path/to/page", "example_com_path_to_page"},
		{"  https://a.b.c  ", "a_b_c"},
		{"Code Snippet Analysis", "code_snippet_analysis"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Sanitize(tt.input); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitize_SchemeVariantsShareAKey(t *testing.T) {
	if Sanitize("http://a.com") != Sanitize("https://a.com/") {
		t.Error("scheme and trailing-slash variants should canonicalize identically")
	}
}

func TestHitCount_ZeroWithoutHits(t *testing.T) {
	rec := newTestRecorder(t)
	if got := rec.HitCount(context.Background(), "https://never-audited.example"); got != 0 {
		t.Errorf("HitCount = %d, want 0", got)
	}
}

func TestRecordHit_ThenCount(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()

	rec.RecordHit(ctx, "https://example.com", "URL")
	rec.RecordHit(ctx, "http://example.com/", "URL")

	if got := rec.HitCount(ctx, "https://example.com"); got != 2 {
		t.Errorf("HitCount = %d, want 2 (scheme variants share a counter)", got)
	}
}

func TestRecordHit_ConcurrentCallersCountExactly(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordHit(ctx, "https://contended.example", "URL")
		}()
	}
	wg.Wait()

	if got := rec.HitCount(ctx, "https://contended.example"); got != n {
		t.Errorf("HitCount = %d, want exactly %d", got, n)
	}
}
