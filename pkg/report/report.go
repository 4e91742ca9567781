// Package report renders two query results side by side as a fixed-width
// terminal table. Rendering is pure: same inputs and width, same output.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/llmduel/llmduel/pkg/models"
)

// DefaultWidth is the column width used when none is configured.
const DefaultWidth = 40

const sep = " | "

// Wrap greedily word-wraps text to the given width in runes. Words longer
// than the width are split across lines on rune boundaries.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = cur[:0]
			}
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		if len(runes) == 0 {
			continue
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, runes...)
		case len(cur)+1+len(runes) <= width:
			cur = append(cur, ' ')
			cur = append(cur, runes...)
		default:
			lines = append(lines, string(cur))
			cur = append(cur[:0], runes...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

// Render produces the full comparison report for one prompt.
func Render(prompt string, openai, ollama models.QueryResult, width int) string {
	if width < 1 {
		width = DefaultWidth
	}
	fullWidth := width*2 + len(sep)

	var b strings.Builder
	b.WriteString(strings.Repeat("=", fullWidth) + "\n")
	fmt.Fprintf(&b, "PROMPT: %s\n", prompt)
	b.WriteString(strings.Repeat("=", fullWidth) + "\n")

	writeRow(&b, fmt.Sprintf("OpenAI (%s)", openai.Model), fmt.Sprintf("Ollama (%s)", ollama.Model), width)
	writeRule(&b, width)

	left := bodyLines(openai, width)
	right := bodyLines(ollama, width)
	for i := 0; i < len(left) || i < len(right); i++ {
		writeRow(&b, lineAt(left, i), lineAt(right, i), width)
	}

	writeRule(&b, width)
	stats := []struct {
		label string
		value func(models.QueryResult) string
	}{
		{"Time", func(r models.QueryResult) string { return formatFloat(r.ElapsedSeconds) + " s" }},
		{"In tokens", func(r models.QueryResult) string { return strconv.Itoa(r.InputTokens) }},
		{"Out tokens", func(r models.QueryResult) string { return strconv.Itoa(r.OutputTokens) }},
		{"Cost", func(r models.QueryResult) string { return formatFloat(r.CostUSD) + " USD" }},
	}
	for _, s := range stats {
		writeRow(&b,
			s.label+": "+statValue(openai, s.label, s.value),
			s.label+": "+statValue(ollama, s.label, s.value),
			width)
	}

	b.WriteString(strings.Repeat("=", fullWidth) + "\n")
	return b.String()
}

// bodyLines returns the wrapped response, the wrapped error, or the
// placeholder for a result with neither.
func bodyLines(r models.QueryResult, width int) []string {
	switch {
	case r.Error != "":
		return Wrap("[ERROR] "+r.Error, width)
	case r.Response != "":
		return Wrap(r.Response, width)
	default:
		return []string{"(no response)"}
	}
}

// statValue renders one footer value. Errored results show N/A for
// everything except elapsed time, which is known even on failure.
func statValue(r models.QueryResult, label string, value func(models.QueryResult) string) string {
	if r.Error != "" && label != "Time" {
		return "N/A"
	}
	return value(r)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeRow(b *strings.Builder, left, right string, width int) {
	b.WriteString(pad(left, width))
	b.WriteString(sep)
	b.WriteString(pad(right, width))
	b.WriteByte('\n')
}

// pad right-pads a cell to width runes; byte-counting %-*s would misalign
// columns on multi-byte text.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func writeRule(b *strings.Builder, width int) {
	b.WriteString(strings.Repeat("-", width) + sep + strings.Repeat("-", width) + "\n")
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
