package report

import (
	"errors"
	"fmt"
)

// ErrInvalid wraps every validation failure so callers can treat any
// schema violation as a single error class.
var ErrInvalid = errors.New("invalid report")

// Validate checks the structural invariants of a parsed provider response:
// required fields present, at least one category, and enum membership for
// issue severities, keyword intents, and ad-intelligence status.
//
// Out-of-range scores are NOT a validation error; Normalize clamps them.
func (r *Report) Validate() error {
	if r.Summary == "" {
		return fmt.Errorf("%w: missing summary", ErrInvalid)
	}
	if len(r.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalid)
	}

	for i, cat := range r.Categories {
		if cat.Name == "" {
			return fmt.Errorf("%w: category %d has no name", ErrInvalid, i)
		}
		for j, issue := range cat.Issues {
			switch issue.Severity {
			case SeverityCritical, SeverityWarning, SeverityInfo:
			default:
				return fmt.Errorf("%w: category %q issue %d has unknown severity %q",
					ErrInvalid, cat.Name, j, issue.Severity)
			}
		}
	}

	for i, kw := range r.SEORankings {
		switch kw.Intent {
		case IntentInformational, IntentTransactional, IntentNavigational, IntentCommercial:
		default:
			return fmt.Errorf("%w: seoRankings[%d] has unknown intent %q", ErrInvalid, i, kw.Intent)
		}
	}

	if ai := r.AdIntelligence; ai != nil {
		switch ai.Status {
		case AdHighPotential, AdOrganicFocus, AdMissedOpportunity:
		default:
			return fmt.Errorf("%w: adIntelligence has unknown status %q", ErrInvalid, ai.Status)
		}
	}

	return nil
}

// Normalize coerces model output into range: all scores clamped to 0..100
// and unknown metric statuses replaced with Needs Improvement. The schema
// asks the model for clamped scores but does not enforce it, so callers
// must not trust the values blindly.
func (r *Report) Normalize() {
	r.OverallScore = clampScore(r.OverallScore)
	for i := range r.Categories {
		r.Categories[i].Score = clampScore(r.Categories[i].Score)
		for j, m := range r.Categories[i].Metrics {
			switch m.Status {
			case MetricGood, MetricNeedsImprovement, MetricPoor:
			default:
				r.Categories[i].Metrics[j].Status = MetricNeedsImprovement
			}
		}
	}
	for i := range r.Competitors {
		r.Competitors[i].EstimatedScore = clampScore(r.Competitors[i].EstimatedScore)
	}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
