package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewGeminiProvider("test-key", "", 5*time.Second)
	p.baseURL = srv.URL
	return p
}

func TestGeminiAttempt_Success(t *testing.T) {
	var gotBody geminiRequest
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.String(), "generateContent") {
			t.Errorf("unexpected path %q", r.URL.String())
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"ok\":true}"}]}}]}`))
	})

	text, err := p.Attempt(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("Attempt() error: %v", err)
	}
	if text != `{"ok":true}` {
		t.Errorf("text = %q", text)
	}

	if gotBody.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("responseMimeType = %q, want application/json", gotBody.GenerationConfig.ResponseMimeType)
	}
	if gotBody.GenerationConfig.ResponseSchema == nil {
		t.Error("request is missing the declared response schema")
	}
	if gotBody.GenerationConfig.Temperature != samplingTemperature {
		t.Errorf("temperature = %v, want %v", gotBody.GenerationConfig.Temperature, samplingTemperature)
	}
}

func TestGeminiAttempt_SurfacesUpstreamErrorMessage(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	})

	_, err := p.Attempt(context.Background(), "analyze this")
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Message != "API key not valid" {
		t.Errorf("Message = %q, want upstream message verbatim", pe.Message)
	}
	if pe.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", pe.Provider)
	}
}

func TestGeminiAttempt_EmptyCandidates(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := p.Attempt(context.Background(), "analyze this")
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestReportSchema_EnumLiterals(t *testing.T) {
	s := ReportSchema()

	intent := s.Properties["seoRankings"].Items.Properties["intent"]
	wantIntents := []string{"Informational", "Transactional", "Navigational", "Commercial"}
	if len(intent.Enum) != len(wantIntents) {
		t.Fatalf("intent enum = %v, want %v", intent.Enum, wantIntents)
	}
	for i, v := range wantIntents {
		if intent.Enum[i] != v {
			t.Errorf("intent enum[%d] = %q, want %q", i, intent.Enum[i], v)
		}
	}

	status := s.Properties["adIntelligence"].Properties["status"]
	if len(status.Enum) != 3 || status.Enum[0] != "High Ad Potential" {
		t.Errorf("ad status enum = %v", status.Enum)
	}
}
