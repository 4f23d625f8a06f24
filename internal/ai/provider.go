// Package ai implements the analysis request service: prompt construction,
// the ordered provider chain with fallback, and parsing of the model's
// JSON response into a report.Report.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// Provider is a single LLM backend capable of answering an audit prompt.
// Implementations return the raw response text; JSON extraction and schema
// validation happen in the Service so every provider is treated uniformly.
type Provider interface {
	// Name identifies the provider in logs and error messages.
	Name() string

	// Attempt sends the prompt and returns the raw response text.
	Attempt(ctx context.Context, prompt string) (string, error)
}

// ErrNoProvider is returned when no provider credential is configured.
// The service fails before making any network call.
var ErrNoProvider = errors.New("no valid API key found (OpenRouter or Gemini): check your configuration")

// ErrUnparsable is returned when a provider response contains no parsable
// report. The underlying provider text is not useful to an end user, so
// callers surface this as a generic analysis failure.
var ErrUnparsable = errors.New("analysis failed: could not parse provider response")

// ProviderError is a non-success response from an LLM backend. The upstream
// error message is preserved so the UI can surface it verbatim.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}
