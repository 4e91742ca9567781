// Package repl drives the interactive compare loop: read a prompt, query
// both backends sequentially, print the side-by-side report, append a log
// record.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/llmduel/llmduel/pkg/backend"
	"github.com/llmduel/llmduel/pkg/logbook"
	"github.com/llmduel/llmduel/pkg/models"
	"github.com/llmduel/llmduel/pkg/report"
)

// Loop runs compare cycles over an input stream. A nil openai querier means
// no credential was configured; the cloud call is skipped without touching
// the network.
type Loop struct {
	openai backend.Querier
	ollama backend.Querier
	log    *logbook.Logger
	width  int
	in     io.Reader
	out    io.Writer
}

// New creates a Loop wired with both backends and the log.
func New(openai, ollama backend.Querier, lb *logbook.Logger, width int, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		openai: openai,
		ollama: ollama,
		log:    lb,
		width:  width,
		in:     in,
		out:    out,
	}
}

// Run reads prompts until quit/exit or end of input. Backend failures are
// surfaced in the report and never abort the loop.
func (l *Loop) Run(ctx context.Context) error {
	l.banner()

	scanner := bufio.NewScanner(l.in)
	for {
		fmt.Fprint(l.out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(l.out, "\nGoodbye!")
			return scanner.Err()
		}

		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		lower := strings.ToLower(prompt)
		if lower == "quit" || lower == "exit" {
			fmt.Fprintln(l.out, "Goodbye!")
			return nil
		}

		l.Once(ctx, prompt)
	}
}

// Once performs a single compare cycle for one prompt.
func (l *Loop) Once(ctx context.Context, prompt string) {
	fmt.Fprint(l.out, "\n[Querying Ollama...] ")
	ollamaRes := l.ollama.Query(ctx, prompt)
	l.progress(ollamaRes)

	var openaiRes models.QueryResult
	if l.openai != nil {
		fmt.Fprint(l.out, "[Querying OpenAI...] ")
		openaiRes = l.openai.Query(ctx, prompt)
		l.progress(openaiRes)
	} else {
		openaiRes = models.QueryResult{Model: "N/A", Error: "no API key configured"}
	}

	fmt.Fprint(l.out, report.Render(prompt, openaiRes, ollamaRes, l.width))

	// A failed append is reported but never ends the session.
	if err := l.log.Append(prompt, openaiRes, ollamaRes); err != nil {
		log.Printf("log append error: %v", err)
	}
}

func (l *Loop) progress(res models.QueryResult) {
	if res.Error != "" {
		fmt.Fprintf(l.out, "error: %s\n", res.Error)
		return
	}
	fmt.Fprintln(l.out, "done.")
}

func (l *Loop) banner() {
	fmt.Fprintln(l.out, "\n=== LLM Duel ===")
	fmt.Fprintln(l.out, "Compare OpenAI and Ollama responses side by side.")
	fmt.Fprintln(l.out)
	if l.openai == nil {
		fmt.Fprintln(l.out, "[INFO] No OpenAI API key found -- OpenAI calls will be skipped.")
		fmt.Fprintln(l.out, "       Set OPENAI_API_KEY in the environment or a .env file to enable them.")
		fmt.Fprintln(l.out)
	}
	fmt.Fprintln(l.out, `Type your prompt and press Enter. Type "quit" or "exit" to stop.`)
	fmt.Fprintln(l.out)
}
