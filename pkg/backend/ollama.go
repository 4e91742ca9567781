package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/llmduel/llmduel/pkg/config"
	"github.com/llmduel/llmduel/pkg/models"
)

// OllamaClient queries a local Ollama server's chat endpoint.
type OllamaClient struct {
	cfg   config.OllamaConfig
	httpc *http.Client
}

// NewOllama creates an Ollama client from config.
func NewOllama(cfg config.OllamaConfig) *OllamaClient {
	return &OllamaClient{
		cfg:   cfg,
		httpc: &http.Client{Timeout: cfg.Timeout},
	}
}

// Query sends one prompt with streaming disabled. Local inference is
// treated as free, so CostUSD stays zero.
func (c *OllamaClient) Query(ctx context.Context, prompt string) models.QueryResult {
	res := models.QueryResult{Model: c.cfg.Model}

	start := time.Now()
	resp, err := c.chat(ctx, prompt)
	res.ElapsedSeconds = elapsedSeconds(start)

	if err != nil {
		res.Error = c.errorMessage(err)
		return res
	}

	res.Response = resp.Message.Content
	res.InputTokens = resp.PromptEvalCount
	res.OutputTokens = resp.EvalCount
	return res
}

func (c *OllamaClient) chat(ctx context.Context, prompt string) (*models.OllamaChatResponse, error) {
	body, err := json.Marshal(models.OllamaChatRequest{
		Model: c.cfg.Model,
		Messages: []models.ChatMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBody)
	}

	var out models.OllamaChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func (c *OllamaClient) errorMessage(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return fmt.Sprintf("timed out after %.0fs", c.cfg.Timeout.Seconds())
	case errors.Is(err, ErrConnection):
		return "cannot reach Ollama, is it running? Try: ollama serve"
	default:
		return fmt.Sprintf("ollama error: %v", err)
	}
}
