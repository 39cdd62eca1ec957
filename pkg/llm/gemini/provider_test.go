package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sentia-be/pkg/llm"
)

func candidateResponse(text string) geminiGenerateResponse {
	var resp geminiGenerateResponse
	resp.Candidates = []struct {
		Content geminiContent `json:"content"`
	}{
		{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
	}
	return resp
}

func TestGenerateRequestShape(t *testing.T) {
	var captured geminiGenerateRequest
	var capturedPath, capturedKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(candidateResponse("Negativo"))
	}))
	defer server.Close()

	provider := NewGeminiProvider("test-key", "gemini-1.5-flash-latest", 5*time.Second)
	provider.BaseURL = server.URL

	response, err := provider.Generate(context.Background(), "classifique isto", llm.WithTemperature(0.2))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if response != "Negativo" {
		t.Errorf("response = %q, want Negativo", response)
	}

	if capturedPath != "/models/gemini-1.5-flash-latest:generateContent" {
		t.Errorf("path = %q", capturedPath)
	}
	if capturedKey != "test-key" {
		t.Errorf("x-goog-api-key = %q, want test-key", capturedKey)
	}
	if len(captured.Contents) != 1 || len(captured.Contents[0].Parts) != 1 {
		t.Fatalf("contents = %+v, want one content with one part", captured.Contents)
	}
	if captured.Contents[0].Parts[0].Text != "classifique isto" {
		t.Errorf("prompt = %q", captured.Contents[0].Parts[0].Text)
	}
	if captured.GenerationConfig == nil || captured.GenerationConfig.Temperature != 0.2 {
		t.Errorf("generationConfig = %+v, want temperature 0.2", captured.GenerationConfig)
	}
}

func TestGenerateModelOverride(t *testing.T) {
	var capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		json.NewEncoder(w).Encode(candidateResponse("ok"))
	}))
	defer server.Close()

	provider := NewGeminiProvider("test-key", "gemini-1.5-flash-latest", 5*time.Second)
	provider.BaseURL = server.URL

	if _, err := provider.Generate(context.Background(), "x", llm.WithModel("gemini-1.5-pro")); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if capturedPath != "/models/gemini-1.5-pro:generateContent" {
		t.Errorf("path = %q, want the overridden model", capturedPath)
	}
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "API key not valid", http.StatusBadRequest)
	}))
	defer server.Close()

	provider := NewGeminiProvider("bad-key", "", 5*time.Second)
	provider.BaseURL = server.URL

	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestGenerateNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiGenerateResponse{})
	}))
	defer server.Close()

	provider := NewGeminiProvider("test-key", "", 5*time.Second)
	provider.BaseURL = server.URL

	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error when the response carries no candidates")
	}
}
