// Package history manages per-user audit history: best-effort persistence
// to the store, a local file cache for anonymous visitors, and trend
// derivation over the history window.
package history

import (
	"github.com/HarshDhiman001/site-plus/internal/report"
)

// TrendedReport is a report annotated with its score movement relative to
// the previous audit of the same site.
type TrendedReport struct {
	report.Report
	Trend       int  `json:"trend"`
	HasPrevious bool `json:"hasPrevious"`
}

// DeriveTrends annotates reports, already sorted newest-first by timestamp,
// with per-site score deltas. For each report it scans chronologically
// older entries for the first one with an identical urlOrTitle (exact,
// case-sensitive match) and reports the score difference against it. A site
// with no earlier audit gets trend 0 and hasPrevious false.
//
// The scan is O(n²) worst case, which is fine: the history window is capped
// at 10 entries. Reports sharing a timestamp keep their input order, so the
// result is order-stable.
func DeriveTrends(reports []report.Report) []TrendedReport {
	trended := make([]TrendedReport, len(reports))
	for i, rep := range reports {
		tr := TrendedReport{Report: rep}
		for j := i + 1; j < len(reports); j++ {
			if reports[j].URLOrTitle == rep.URLOrTitle {
				tr.Trend = rep.OverallScore - reports[j].OverallScore
				tr.HasPrevious = true
				break
			}
		}
		trended[i] = tr
	}
	return trended
}

// Stats summarizes a history window for the dashboard.
type Stats struct {
	TotalAudits  int `json:"totalAudits"`
	AverageScore int `json:"averageScore"`
	UniqueSites  int `json:"uniqueSites"`
}

// DeriveStats computes dashboard statistics over the given reports. The
// average is rounded to the nearest integer.
func DeriveStats(reports []report.Report) Stats {
	if len(reports) == 0 {
		return Stats{}
	}

	total := 0
	sites := make(map[string]struct{}, len(reports))
	for _, rep := range reports {
		total += rep.OverallScore
		sites[rep.URLOrTitle] = struct{}{}
	}

	return Stats{
		TotalAudits:  len(reports),
		AverageScore: (total + len(reports)/2) / len(reports),
		UniqueSites:  len(sites),
	}
}
