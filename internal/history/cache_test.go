package history

import (
	"fmt"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}
	return cache
}

func TestCache_AppendAndList(t *testing.T) {
	cache := newTestCache(t)

	r1 := rep("a.com", 70, "2026-08-01T00:00:00Z")
	r2 := rep("a.com", 80, "2026-08-02T00:00:00Z")

	if err := cache.Append(0, &r1); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := cache.Append(0, &r2); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	got, err := cache.List(0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reports, want 2", len(got))
	}
	if got[0].Timestamp != r2.Timestamp {
		t.Errorf("first report timestamp = %q, want newest first", got[0].Timestamp)
	}
}

func TestCache_OrdersMixedTimestampFormatsChronologically(t *testing.T) {
	cache := newTestCache(t)

	// The bare-datetime form sorts below RFC3339 as a raw string even when
	// it is chronologically newer; ordering must go through parsed times.
	older := rep("a.com", 70, "2026-08-01T12:00:00Z")
	newer := rep("a.com", 80, "2026-08-01 13:00:00")

	if err := cache.Append(0, &older); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := cache.Append(0, &newer); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	got, err := cache.List(0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reports, want 2", len(got))
	}
	if got[0].Timestamp != newer.Timestamp {
		t.Errorf("first report timestamp = %q, want the 13:00 entry first", got[0].Timestamp)
	}
}

func TestCache_ListMissingFileIsEmpty(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.List(42)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d reports from missing namespace", len(got))
	}
}

func TestCache_DeduplicatesByExactTimestamp(t *testing.T) {
	cache := newTestCache(t)

	r := rep("a.com", 70, "2026-08-01T00:00:00Z")
	for i := 0; i < 3; i++ {
		if err := cache.Append(0, &r); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	got, err := cache.List(0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d reports, want 1 after duplicate appends", len(got))
	}
}

func TestCache_CapEnforcedAtWriteTime(t *testing.T) {
	cache := newTestCache(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < CacheCap+5; i++ {
		r := rep("a.com", 50+i, base.Add(time.Duration(i)*time.Hour).Format(time.RFC3339))
		if err := cache.Append(0, &r); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	got, err := cache.List(0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != CacheCap {
		t.Fatalf("got %d reports, want exactly %d", len(got), CacheCap)
	}

	// The oldest entries were trimmed; the newest survive.
	if got[0].OverallScore != 50+CacheCap+4 {
		t.Errorf("newest surviving score = %d", got[0].OverallScore)
	}
}

func TestCache_NamespacesAreIsolated(t *testing.T) {
	cache := newTestCache(t)

	anon := rep("anon.com", 60, "2026-08-01T00:00:00Z")
	owned := rep("owned.com", 90, "2026-08-01T00:00:00Z")

	if err := cache.Append(0, &anon); err != nil {
		t.Fatalf("Append(anon) error: %v", err)
	}
	if err := cache.Append(7, &owned); err != nil {
		t.Fatalf("Append(user) error: %v", err)
	}

	gotAnon, err := cache.List(0)
	if err != nil {
		t.Fatalf("List(0) error: %v", err)
	}
	gotUser, err := cache.List(7)
	if err != nil {
		t.Fatalf("List(7) error: %v", err)
	}

	if len(gotAnon) != 1 || gotAnon[0].URLOrTitle != "anon.com" {
		t.Errorf("anonymous namespace = %+v", gotAnon)
	}
	if len(gotUser) != 1 || gotUser[0].URLOrTitle != "owned.com" {
		t.Errorf("user namespace = %+v", gotUser)
	}
}

func TestCache_SurvivesManyDistinctSites(t *testing.T) {
	cache := newTestCache(t)

	for i := 0; i < 5; i++ {
		r := rep(fmt.Sprintf("site%d.com", i), 50, fmt.Sprintf("2026-08-0%dT00:00:00Z", i+1))
		if err := cache.Append(0, &r); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	got, err := cache.List(0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("got %d reports, want 5", len(got))
	}
}
