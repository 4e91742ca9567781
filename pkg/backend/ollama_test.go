package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/llmduel/llmduel/pkg/config"
	"github.com/llmduel/llmduel/pkg/models"
)

func ollamaConfig(url string) config.OllamaConfig {
	return config.OllamaConfig{
		Model:   "llama3",
		BaseURL: url,
		Timeout: 5 * time.Second,
	}
}

func TestOllamaQuery(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req models.OllamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Stream {
			t.Error("streaming must be disabled")
		}

		resp := models.OllamaChatResponse{
			Model:           "llama3",
			Message:         models.ChatMessage{Role: "assistant", Content: "Hi there"},
			Done:            true,
			PromptEvalCount: 12,
			EvalCount:       34,
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer upstream.Close()

	c := NewOllama(ollamaConfig(upstream.URL))
	res := c.Query(context.Background(), "hi")

	if res.Error != "" {
		t.Fatalf("unexpected error: %s", res.Error)
	}
	if res.Response != "Hi there" {
		t.Errorf("expected Hi there, got %q", res.Response)
	}
	if res.InputTokens != 12 || res.OutputTokens != 34 {
		t.Errorf("unexpected token counts %d/%d", res.InputTokens, res.OutputTokens)
	}
	if res.CostUSD != 0 {
		t.Errorf("local inference must cost 0, got %v", res.CostUSD)
	}
}

func TestOllamaMissingEvalCounts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Older servers omit prompt_eval_count and eval_count.
		w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"ok"},"done":true}`))
	}))
	defer upstream.Close()

	c := NewOllama(ollamaConfig(upstream.URL))
	res := c.Query(context.Background(), "hi")

	if res.Error != "" {
		t.Fatalf("unexpected error: %s", res.Error)
	}
	if res.InputTokens != 0 || res.OutputTokens != 0 {
		t.Errorf("expected zero token counts, got %d/%d", res.InputTokens, res.OutputTokens)
	}
}

func TestOllamaConnectionFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	c := NewOllama(ollamaConfig(upstream.URL))
	res := c.Query(context.Background(), "hi")

	if res.Error != "cannot reach Ollama, is it running? Try: ollama serve" {
		t.Errorf("unexpected error %q", res.Error)
	}
	if res.Response != "" {
		t.Error("response must be empty on failure")
	}
}

func TestOllamaTimeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer upstream.Close()

	cfg := ollamaConfig(upstream.URL)
	cfg.Timeout = 20 * time.Millisecond
	c := NewOllama(cfg)
	res := c.Query(context.Background(), "hi")

	if !strings.HasPrefix(res.Error, "timed out after ") {
		t.Errorf("expected timeout error, got %q", res.Error)
	}
}

func TestOllamaUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer upstream.Close()

	c := NewOllama(ollamaConfig(upstream.URL))
	res := c.Query(context.Background(), "hi")

	if !strings.HasPrefix(res.Error, "ollama error: ") {
		t.Errorf("expected generic error, got %q", res.Error)
	}
}
