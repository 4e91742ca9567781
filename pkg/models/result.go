package models

import "time"

// QueryResult is the normalized outcome of one backend call.
// Either Response or Error is set, never both; a skipped call has neither.
type QueryResult struct {
	Response       string  `json:"response,omitempty"`
	Model          string  `json:"model"`
	InputTokens    int     `json:"input_tokens"`
	OutputTokens   int     `json:"output_tokens"`
	ElapsedSeconds float64 `json:"response_time"`
	CostUSD        float64 `json:"cost_usd"`
	Error          string  `json:"error,omitempty"`
}

// LogEntry is one persisted exchange: the prompt and both results.
type LogEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Prompt    string      `json:"prompt"`
	OpenAI    QueryResult `json:"openai"`
	Ollama    QueryResult `json:"ollama"`
}
