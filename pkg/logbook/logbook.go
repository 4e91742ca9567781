// Package logbook appends exchange records to a JSONL file, one
// self-contained JSON object per line. The file is never read back or
// rotated by this program.
package logbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/llmduel/llmduel/pkg/models"
)

// Logger appends LogEntry records to a file. The file is opened and closed
// per append; no handle is held across calls.
type Logger struct {
	path string
	now  func() time.Time
}

// New creates a Logger writing to path.
func New(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Append records one exchange. The entry timestamp is set here. Each write
// is a single line so concurrent program instances interleave cleanly.
func (l *Logger) Append(prompt string, openai, ollama models.QueryResult) error {
	entry := models.LogEntry{
		Timestamp: l.now(),
		Prompt:    prompt,
		OpenAI:    openai,
		Ollama:    ollama,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode log entry: %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	return nil
}
