package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Compile-time interface check.
var _ Provider = (*GeminiProvider)(nil)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultModel = "gemini-2.0-flash"
)

// GeminiProvider is the fallback provider. Unlike the chat-completions
// path, the generateContent API accepts the audit report schema directly
// as a structured-output constraint, so the response is expected to be
// bare JSON already.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiProvider creates a GeminiProvider. An empty model selects the
// default. The timeout bounds the whole HTTP exchange.
func NewGeminiProvider(apiKey, model string, timeout time.Duration) *GeminiProvider {
	if model == "" {
		model = geminiDefaultModel
	}
	return &GeminiProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return "gemini" }

// geminiRequest is the request body for the generateContent API.
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float32 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// geminiResponse is the response body from the generateContent API.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Attempt sends the prompt with the declared report schema attached and
// returns the text of the first candidate part.
func (p *GeminiProvider) Attempt(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      samplingTemperature,
			ResponseMimeType: "application/json",
			ResponseSchema:   ReportSchema(),
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("calling Gemini API", "model", p.model)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", &ProviderError{
			Provider: p.Name(),
			Message:  fmt.Sprintf("unparsable response (status %d)", resp.StatusCode),
		}
	}

	if apiResp.Error != nil {
		return "", &ProviderError{Provider: p.Name(), Message: apiResp.Error.Message}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Provider: p.Name(),
			Message:  fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
		}
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Provider: p.Name(), Message: "empty response: no candidates returned"}
	}

	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}
