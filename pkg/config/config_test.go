package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Display.Width != 40 {
		t.Errorf("expected width 40, got %d", cfg.Display.Width)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("unexpected default model %s", cfg.OpenAI.Model)
	}
	if cfg.Ollama.Timeout != 120*time.Second {
		t.Errorf("expected 120s timeout, got %v", cfg.Ollama.Timeout)
	}
	if cfg.OpenAI.Pricing.InputPerMTok != 0.15 || cfg.OpenAI.Pricing.OutputPerMTok != 0.60 {
		t.Errorf("unexpected default pricing %+v", cfg.OpenAI.Pricing)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_API_KEY", "sk-test-123")

	content := `
log_path: "out.jsonl"
display:
  width: 60
openai:
  model: gpt-4o
  api_key: ${TEST_API_KEY}
  timeout: 30s
ollama:
  base_url: http://10.0.0.5:11434
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogPath != "out.jsonl" {
		t.Errorf("expected out.jsonl, got %s", cfg.LogPath)
	}
	if cfg.Display.Width != 60 {
		t.Errorf("expected width 60, got %d", cfg.Display.Width)
	}
	if cfg.OpenAI.APIKey != "sk-test-123" {
		t.Errorf("env var not expanded: got %s", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.OpenAI.Timeout)
	}
	// Untouched sections keep defaults.
	if cfg.Ollama.Model != "llama3" {
		t.Errorf("expected default ollama model, got %s", cfg.Ollama.Model)
	}
	if cfg.Ollama.BaseURL != "http://10.0.0.5:11434" {
		t.Errorf("unexpected ollama url %s", cfg.Ollama.BaseURL)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFillFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env-key")

	cfg := Default()
	cfg.FillFromEnv()
	if cfg.OpenAI.APIKey != "sk-env-key" {
		t.Errorf("expected key from env, got %q", cfg.OpenAI.APIKey)
	}

	// A key from the config file wins over the environment.
	cfg = Default()
	cfg.OpenAI.APIKey = "sk-file-key"
	cfg.FillFromEnv()
	if cfg.OpenAI.APIKey != "sk-file-key" {
		t.Errorf("expected file key to win, got %q", cfg.OpenAI.APIKey)
	}
}
