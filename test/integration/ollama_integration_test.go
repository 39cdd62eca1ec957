package integration

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"sentia-be/pkg/classifier"
	"sentia-be/pkg/llm/ollama"
)

// Live Ollama checks. They require a local Ollama server with the configured
// model pulled, so they skip unless OLLAMA_INTEGRATION=true.

func ollamaConfig(t *testing.T) (baseURL, model string) {
	t.Helper()
	if os.Getenv("OLLAMA_INTEGRATION") != "true" {
		t.Skip("Skipping Ollama integration test: OLLAMA_INTEGRATION not set")
	}

	baseURL = os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	model = os.Getenv("LLM_MODEL")
	if model == "" {
		model = "llama3"
	}

	client := &http.Client{Timeout: 5 * time.Second}
	if _, err := client.Get(baseURL); err != nil {
		t.Skipf("Ollama not reachable at %s: %v", baseURL, err)
	}
	return baseURL, model
}

func TestOllamaGenerate(t *testing.T) {
	baseURL, model := ollamaConfig(t)

	provider := ollama.NewOllamaProvider(baseURL, model, 120*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	response, err := provider.Generate(ctx, "Responda com uma única palavra: olá")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	t.Logf("Response: %s", response)
	if response == "" {
		t.Error("Response should not be empty")
	}
}

func TestOllamaSentimentClassification(t *testing.T) {
	baseURL, model := ollamaConfig(t)

	provider := ollama.NewOllamaProvider(baseURL, model, 120*time.Second)
	c := classifier.NewLLMClassifier(provider, 0.2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Second)
	defer cancel()

	tests := []struct {
		text string
		want string
	}{
		{text: "Adorei o produto, superou todas as expectativas!", want: "POS"},
		{text: "Péssimo atendimento, nunca mais compro aqui.", want: "NEG"},
	}

	for _, tt := range tests {
		got := c.Classify(ctx, tt.text)
		t.Logf("%q -> %s", tt.text, got)
		// Model output is probabilistic; log mismatches instead of failing.
		if string(got) != tt.want {
			t.Logf("Unexpected classification: got %s, expected %s", got, tt.want)
		}
	}
}
