package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/HarshDhiman001/site-plus/internal/report"
)

// Request is one analysis request. Content must be non-empty; Region
// defaults to the global region when unset. PageContext is optional real
// page text supplied by the page probe for URL audits.
type Request struct {
	Content     string
	Kind        report.AnalysisKind
	Region      string
	PageContext string
}

// Service runs an analysis request against an ordered chain of providers
// and normalizes the first successful response into a Report.
type Service struct {
	providers []Provider
	now       func() time.Time
}

// NewService creates a Service over the given provider chain. Providers are
// tried in order; the first success wins. An empty chain means no credential
// was configured and every Analyze call fails with ErrNoProvider.
func NewService(providers ...Provider) *Service {
	return &Service{
		providers: providers,
		now:       time.Now,
	}
}

// Analyze builds the prompt, walks the provider chain, and parses the
// response. The returned Report is stamped with the request's site label,
// the current time, and the region, and has its scores normalized.
//
// Errors are never retried here; retry is a user-initiated repeat.
func (s *Service) Analyze(ctx context.Context, req Request) (*report.Report, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("empty content")
	}
	region := req.Region
	if region == "" {
		region = report.DefaultRegion
	}

	if len(s.providers) == 0 {
		return nil, ErrNoProvider
	}

	prompt := BuildPrompt(req.Content, req.Kind, region, req.PageContext)

	var (
		text    string
		lastErr error
	)
	for _, p := range s.providers {
		var err error
		text, err = p.Attempt(ctx, prompt)
		if err == nil {
			lastErr = nil
			break
		}
		lastErr = err
		slog.Warn("provider attempt failed", "provider", p.Name(), "error", err)
	}
	if lastErr != nil {
		return nil, lastErr
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(extractJSON(text)), &rep); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	if err := rep.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	// Stamp request identity over whatever the model echoed back.
	if req.Kind == report.KindCode {
		rep.URLOrTitle = report.CodeSnippetLabel
	} else {
		rep.URLOrTitle = req.Content
	}
	rep.Timestamp = s.now().UTC().Format(time.RFC3339)
	rep.Region = region
	rep.Normalize()

	return &rep, nil
}
