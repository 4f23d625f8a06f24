package report

import (
	"errors"
	"testing"
)

// validReport returns a minimal report that passes Validate.
func validReport() *Report {
	return &Report{
		URLOrTitle:   "https://example.com",
		OverallScore: 82,
		Summary:      "Solid site with minor issues.",
		Timestamp:    "2026-08-30T10:00:00Z",
		Categories: []Category{
			{
				Name:        "SEO",
				Score:       78,
				Description: "Reasonable on-page SEO.",
				Issues: []Issue{
					{Severity: SeverityWarning, Message: "Missing meta description", Recommendation: "Add one"},
				},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validReport().Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Report)
	}{
		{"missing summary", func(r *Report) { r.Summary = "" }},
		{"no categories", func(r *Report) { r.Categories = nil }},
		{"unnamed category", func(r *Report) { r.Categories[0].Name = "" }},
		{"unknown severity", func(r *Report) { r.Categories[0].Issues[0].Severity = "Severe" }},
		{"unknown intent", func(r *Report) {
			r.SEORankings = []KeywordRanking{{Keyword: "dentist", Position: 3, Volume: "2.4k", Intent: "Curious"}}
		}},
		{"unknown ad status", func(r *Report) {
			r.AdIntelligence = &AdIntelligence{Status: "Maybe Ads", Analysis: "n/a"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReport()
			tt.mutate(r)
			err := r.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v is not ErrInvalid", err)
			}
		})
	}
}

func TestNormalize_ClampsScores(t *testing.T) {
	r := validReport()
	r.OverallScore = 130
	r.Categories[0].Score = -5
	r.Competitors = []Competitor{{Name: "rival.com", Strength: "brand", EstimatedScore: 250}}
	r.Categories[0].Metrics = []Metric{{Name: "Largest Contentful Paint", Value: "2.1s", Status: "Excellent"}}

	r.Normalize()

	if r.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", r.OverallScore)
	}
	if r.Categories[0].Score != 0 {
		t.Errorf("category score = %d, want 0", r.Categories[0].Score)
	}
	if r.Competitors[0].EstimatedScore != 100 {
		t.Errorf("competitor score = %d, want 100", r.Competitors[0].EstimatedScore)
	}
	if got := r.Categories[0].Metrics[0].Status; got != MetricNeedsImprovement {
		t.Errorf("metric status = %q, want %q", got, MetricNeedsImprovement)
	}
}

func TestIsSupportedRegion(t *testing.T) {
	if !IsSupportedRegion(DefaultRegion) {
		t.Error("default region not supported")
	}
	if !IsSupportedRegion("Japan") {
		t.Error("Japan should be supported")
	}
	if IsSupportedRegion("Mars") {
		t.Error("Mars should not be supported")
	}
}

func TestReportTime(t *testing.T) {
	r := validReport()
	if r.Time().IsZero() {
		t.Error("Time() returned zero for valid RFC3339 timestamp")
	}

	r.Timestamp = "not a time"
	if !r.Time().IsZero() {
		t.Error("Time() should return zero for malformed timestamp")
	}
}
