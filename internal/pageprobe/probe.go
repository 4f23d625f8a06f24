// Package pageprobe fetches the target page of a URL audit and condenses
// it into prompt context, so the model's page details can rest on real
// content instead of guesswork. Probing is strictly best-effort: any
// failure means the audit proceeds without context.
package pageprobe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const (
	defaultTimeout = 10 * time.Second

	// maxBodyBytes caps how much of the page is read; audit context does
	// not need more than the leading content.
	maxBodyBytes = 2 << 20

	// maxContextWords bounds the text folded into the prompt.
	maxContextWords = 400
)

// Probe fetches and summarizes web pages for prompt context.
type Probe struct {
	client *http.Client
}

// New creates a Probe. A non-positive timeout selects the default.
func New(timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Probe{
		client: &http.Client{Timeout: timeout},
	}
}

// browserHeaders sets browser-like request headers so sites that check
// Accept or User-Agent don't reject the request.
func browserHeaders(r *http.Request) {
	r.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	r.Header.Set("User-Agent", "Mozilla/5.0 (compatible; SitePulse/1.0; +https://github.com/HarshDhiman001/site-plus)")
	r.Header.Set("Accept-Language", "en-US,en;q=0.9")
}

// Fetch retrieves pageURL and returns a compact context block with the
// page title, meta description, and leading readable text.
func (p *Probe) Fetch(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		// Bare domains are common input; retry with an https prefix.
		parsed, err = url.Parse("https://" + pageURL)
		if err != nil {
			return "", fmt.Errorf("unusable url %q: %w", pageURL, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %q: %w", pageURL, err)
	}
	browserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %q: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %q: HTTP %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading body from %q: %w", pageURL, err)
	}

	description := metaDescription(body)

	article, err := readability.FromReader(strings.NewReader(string(body)), parsed)
	if err != nil {
		return "", fmt.Errorf("readability extraction for %q: %w", pageURL, err)
	}

	var b strings.Builder
	if article.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", article.Title)
	}
	if description != "" {
		fmt.Fprintf(&b, "Meta Description: %s\n", description)
	}
	if article.Excerpt != "" {
		fmt.Fprintf(&b, "Excerpt: %s\n", article.Excerpt)
	}
	if text := strings.TrimSpace(article.TextContent); text != "" {
		fmt.Fprintf(&b, "Page Text:\n%s\n", truncateWords(text, maxContextWords))
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("no usable content at %q", pageURL)
	}
	return out, nil
}

// truncateWords returns the first maxWords whitespace-delimited words of s.
func truncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ")
}
