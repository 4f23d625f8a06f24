package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Compile-time interface check.
var _ Provider = (*OpenRouterProvider)(nil)

const (
	openRouterBaseURL      = "https://openrouter.ai/api/v1"
	openRouterDefaultModel = "google/gemini-2.0-flash-001"

	// samplingTemperature is shared by both providers to keep their output
	// comparable across the fallback boundary.
	samplingTemperature = 0.4
)

// OpenRouterProvider is the primary provider. OpenRouter speaks the OpenAI
// chat-completions protocol, so it reuses the go-openai client with a
// custom base URL. JSON response mode is requested; the response content is
// still free text that may wrap the JSON object in prose or code fences.
type OpenRouterProvider struct {
	client *openai.Client
	model  string
}

// NewOpenRouterProvider creates an OpenRouterProvider. An empty model
// selects the default. The timeout bounds the whole HTTP exchange.
func NewOpenRouterProvider(apiKey, model string, timeout time.Duration) *OpenRouterProvider {
	if model == "" {
		model = openRouterDefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenRouterProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// newOpenRouterProviderAt is like NewOpenRouterProvider but targets an
// arbitrary base URL. Used by tests to point at an httptest server.
func newOpenRouterProviderAt(baseURL, apiKey, model string, timeout time.Duration) *OpenRouterProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	if model == "" {
		model = openRouterDefaultModel
	}
	return &OpenRouterProvider{client: openai.NewClientWithConfig(cfg), model: model}
}

// Name implements Provider.
func (p *OpenRouterProvider) Name() string { return "openrouter" }

// Attempt sends the prompt as a single user message and returns the raw
// text of the first choice.
func (p *OpenRouterProvider) Attempt(ctx context.Context, prompt string) (string, error) {
	slog.Debug("calling OpenRouter", "model", p.model)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: samplingTemperature,
	})
	if err != nil {
		// Surface the upstream error message verbatim when available.
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Provider: p.Name(), Message: apiErr.Message}
		}
		return "", &ProviderError{Provider: p.Name(), Message: err.Error()}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: p.Name(), Message: "empty response: no choices returned"}
	}

	return resp.Choices[0].Message.Content, nil
}

// String implements fmt.Stringer for log output.
func (p *OpenRouterProvider) String() string {
	return fmt.Sprintf("openrouter(%s)", p.model)
}
