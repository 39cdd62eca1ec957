package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sentia-be/pkg/llm"
)

func TestGenerateRequestShape(t *testing.T) {
	var captured ollamaGenerateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q, want /api/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaGenerateResponse{
			Model:    captured.Model,
			Response: "Positivo",
			Done:     true,
		})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3", 5*time.Second)

	response, err := provider.Generate(context.Background(), "classifique isto", llm.WithTemperature(0.2))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if response != "Positivo" {
		t.Errorf("response = %q, want Positivo", response)
	}

	if captured.Model != "llama3" {
		t.Errorf("model = %q, want llama3", captured.Model)
	}
	if captured.Prompt != "classifique isto" {
		t.Errorf("prompt = %q", captured.Prompt)
	}
	if captured.Stream {
		t.Error("stream must be false")
	}
	if captured.Options == nil || captured.Options.Temperature != 0.2 {
		t.Errorf("options = %+v, want temperature 0.2", captured.Options)
	}
}

func TestGenerateModelOverride(t *testing.T) {
	var captured ollamaGenerateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "ok", Done: true})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3", 5*time.Second)
	if _, err := provider.Generate(context.Background(), "x", llm.WithModel("qwen2.5")); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if captured.Model != "qwen2.5" {
		t.Errorf("model = %q, want qwen2.5", captured.Model)
	}
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3", 5*time.Second)
	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestGenerateUnreachable(t *testing.T) {
	provider := NewOllamaProvider("http://127.0.0.1:1", "llama3", 500*time.Millisecond)
	if _, err := provider.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error when the server is unreachable")
	}
}
