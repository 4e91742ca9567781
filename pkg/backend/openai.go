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

// OpenAIClient queries an OpenAI-compatible chat completion endpoint.
type OpenAIClient struct {
	cfg   config.OpenAIConfig
	httpc *http.Client
}

// NewOpenAI creates an OpenAI client from config.
func NewOpenAI(cfg config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		cfg:   cfg,
		httpc: &http.Client{Timeout: cfg.Timeout},
	}
}

// Query sends one prompt as a single user message. One attempt, no retries.
func (c *OpenAIClient) Query(ctx context.Context, prompt string) models.QueryResult {
	res := models.QueryResult{Model: c.cfg.Model}

	start := time.Now()
	resp, err := c.complete(ctx, prompt)
	res.ElapsedSeconds = elapsedSeconds(start)

	if err != nil {
		res.Error = c.errorMessage(err)
		return res
	}

	if len(resp.Choices) == 0 {
		res.Error = "openai error: no choices in response"
		return res
	}
	res.Response = resp.Choices[0].Message.Content
	if resp.Usage != nil {
		res.InputTokens = resp.Usage.PromptTokens
		res.OutputTokens = resp.Usage.CompletionTokens
		res.CostUSD = EstimateCost(res.InputTokens, res.OutputTokens, c.cfg.Pricing)
	}
	return res
}

// complete performs the HTTP round trip, classifying failures into the
// package error kinds.
func (c *OpenAIClient) complete(ctx context.Context, prompt string) (*models.ChatCompletionResponse, error) {
	body, err := json.Marshal(models.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []models.ChatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidKey
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBody)
	}

	var out models.ChatCompletionResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func (c *OpenAIClient) errorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidKey):
		return "invalid API key"
	case errors.Is(err, ErrTimeout):
		return fmt.Sprintf("timed out after %.0fs", c.cfg.Timeout.Seconds())
	case errors.Is(err, ErrConnection):
		return "cannot reach OpenAI API"
	default:
		return fmt.Sprintf("openai error: %v", err)
	}
}

// EstimateCost computes the USD cost of a call from token counts and
// per-million-token prices, rounded to six decimal places.
func EstimateCost(inputTokens, outputTokens int, p config.PricingConfig) float64 {
	cost := float64(inputTokens)*p.InputPerMTok/1e6 + float64(outputTokens)*p.OutputPerMTok/1e6
	return roundTo(cost, 6)
}
