package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/HarshDhiman001/site-plus/internal/report"
)

// cacheNamespace is the fixed key prefix for local history files,
// mirroring the browser-storage key the hosted product uses.
const cacheNamespace = "sitepulse_history"

// CacheCap is the maximum number of entries kept per namespace. The cap is
// enforced at write time: the list is trimmed before it is stored.
const CacheCap = 10

// Cache is an on-disk audit history for visitors without an account, and a
// local mirror for signed-in users. Each namespace is one JSON file holding
// at most CacheCap reports, newest first.
type Cache struct {
	dir string
}

// NewCache creates a Cache rooted at dir, creating the directory if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// namespacePath maps a user ID to the cache file. Zero means anonymous.
func (c *Cache) namespacePath(userID int64) string {
	if userID == 0 {
		return filepath.Join(c.dir, cacheNamespace+".json")
	}
	return filepath.Join(c.dir, fmt.Sprintf("%s_%d.json", cacheNamespace, userID))
}

// Append inserts a report at the head of the namespace's history. A report
// whose timestamp exactly matches an existing entry is a duplicate and is
// dropped. The list is trimmed to CacheCap before being written back.
func (c *Cache) Append(userID int64, rep *report.Report) error {
	reports, err := c.List(userID)
	if err != nil {
		return err
	}

	for _, existing := range reports {
		if existing.Timestamp == rep.Timestamp {
			return nil
		}
	}

	reports = append([]report.Report{*rep}, reports...)
	// Order by parsed time, not the raw string, so entries with mixed
	// timestamp formats still sort chronologically.
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Time().After(reports[j].Time())
	})
	if len(reports) > CacheCap {
		reports = reports[:CacheCap]
	}

	return c.write(userID, reports)
}

// List returns the namespace's history, newest first. A missing file is an
// empty history, not an error.
func (c *Cache) List(userID int64) ([]report.Report, error) {
	data, err := os.ReadFile(c.namespacePath(userID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history cache: %w", err)
	}

	var reports []report.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("parsing history cache: %w", err)
	}
	return reports, nil
}

// write replaces the namespace file atomically: the new content lands in a
// temp file first and is renamed into place.
func (c *Cache) write(userID int64, reports []report.Report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history cache: %w", err)
	}

	path := c.namespacePath(userID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing history cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing history cache: %w", err)
	}
	return nil
}
