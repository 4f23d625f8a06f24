package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HarshDhiman001/site-plus/internal/report"
)

func TestGetRegions(t *testing.T) {
	rec := httptest.NewRecorder()
	GetRegions().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Default string   `json:"default"`
		Regions []string `json:"regions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Default != report.DefaultRegion {
		t.Errorf("default = %q, want %q", resp.Default, report.DefaultRegion)
	}
	if len(resp.Regions) == 0 || resp.Regions[0] != report.DefaultRegion {
		t.Errorf("regions = %v, want the default first", resp.Regions)
	}
}
