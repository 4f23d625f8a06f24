// Package report defines the audit report wire contract shared between the
// AI providers and the API surface.
//
// The JSON field names match the schema the model is instructed to return,
// so a parsed provider response unmarshals directly into a Report. Model
// output is untrusted: callers run Validate and Normalize before using it.
package report

import "time"

// Severity classifies a single audit issue.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityWarning  Severity = "Warning"
	SeverityInfo     Severity = "Info"
)

// MetricStatus grades a performance metric.
type MetricStatus string

const (
	MetricGood             MetricStatus = "Good"
	MetricNeedsImprovement MetricStatus = "Needs Improvement"
	MetricPoor             MetricStatus = "Poor"
)

// KeywordIntent classifies an estimated keyword ranking.
type KeywordIntent string

const (
	IntentInformational KeywordIntent = "Informational"
	IntentTransactional KeywordIntent = "Transactional"
	IntentNavigational  KeywordIntent = "Navigational"
	IntentCommercial    KeywordIntent = "Commercial"
)

// AdStatus summarizes a site's advertising posture.
type AdStatus string

const (
	AdHighPotential     AdStatus = "High Ad Potential"
	AdOrganicFocus      AdStatus = "Organic Focus"
	AdMissedOpportunity AdStatus = "Missed Opportunity"
)

// AnalysisKind selects the prompt template for an analysis request.
type AnalysisKind string

const (
	KindURL  AnalysisKind = "URL"
	KindCode AnalysisKind = "CODE"
)

// CodeSnippetLabel is the fixed site label stamped on CODE audits, which
// have no URL of their own.
const CodeSnippetLabel = "Code Snippet Analysis"

// Issue is a single finding inside a category.
type Issue struct {
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// Metric is one performance measurement with a display value like "2.1s".
type Metric struct {
	Name   string       `json:"name"`
	Value  string       `json:"value"`
	Status MetricStatus `json:"status"`
}

// Category is one audit dimension (Performance, SEO, Accessibility, ...).
// Slice order is display order.
type Category struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Metrics     []Metric `json:"metrics,omitempty"`
	Issues      []Issue  `json:"issues"`
}

// Competitor is an estimated competing site in the target region.
type Competitor struct {
	Name           string `json:"name"`
	Strength       string `json:"strength"`
	EstimatedScore int    `json:"estimatedScore"`
}

// KeywordRanking is an estimated search ranking for one keyword.
type KeywordRanking struct {
	Keyword  string        `json:"keyword"`
	Position int           `json:"position"`
	Volume   string        `json:"volume"`
	Intent   KeywordIntent `json:"intent"`
}

// CampaignStrategy is a generated marketing campaign idea.
type CampaignStrategy struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Platforms      []string `json:"platforms"`
	TargetAudience string   `json:"targetAudience"`
	AdHook         string   `json:"adHook"`
	AdType         string   `json:"adType"`
	Reasoning      string   `json:"reasoning"`
}

// AdIntelligence summarizes the site's paid-advertising opportunity.
type AdIntelligence struct {
	Status   AdStatus `json:"status"`
	Analysis string   `json:"analysis"`
}

// PageDetails holds the model's claims about the fetched page. They are not
// independently verified unless the page probe supplied real context.
type PageDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PreviewText string `json:"previewText"`
}

// ResearchBrief is a short intelligence-style summary of the site.
type ResearchBrief struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Report is the unit of output for one analysis. Identity for trend purposes
// is exact, case-sensitive URLOrTitle equality plus the timestamp. A Report
// is immutable once created.
type Report struct {
	URLOrTitle       string             `json:"urlOrTitle"`
	Region           string             `json:"region,omitempty"`
	OverallScore     int                `json:"overallScore"`
	Summary          string             `json:"summary"`
	Timestamp        string             `json:"timestamp"`
	PageDetails      *PageDetails       `json:"pageDetails,omitempty"`
	ResearchBrief    *ResearchBrief     `json:"researchBrief,omitempty"`
	Categories       []Category         `json:"categories"`
	Competitors      []Competitor       `json:"competitors,omitempty"`
	SEORankings      []KeywordRanking   `json:"seoRankings,omitempty"`
	ConversionAdvice []string           `json:"conversionAdvice,omitempty"`
	Campaigns        []CampaignStrategy `json:"campaigns,omitempty"`
	AdIntelligence   *AdIntelligence    `json:"adIntelligence,omitempty"`
}

// Time parses the report's timestamp. It returns the zero time if the
// timestamp is missing or malformed.
func (r *Report) Time() time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, r.Timestamp); err == nil {
			return t
		}
	}
	return time.Time{}
}
