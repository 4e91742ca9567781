// Package backend implements the two LLM clients. Each client performs a
// single blocking HTTP round trip and normalizes the outcome into a
// models.QueryResult; errors never escape Query.
package backend

import (
	"context"
	"errors"
	"math"
	"net"
	"time"

	"github.com/llmduel/llmduel/pkg/models"
)

// Querier is one LLM backend.
type Querier interface {
	Query(ctx context.Context, prompt string) models.QueryResult
}

// Error kinds. Clients classify transport and API failures into these
// sentinels so callers and tests can discriminate without string matching.
var (
	ErrInvalidKey = errors.New("invalid API key")
	ErrConnection = errors.New("connection failure")
	ErrTimeout    = errors.New("request timed out")
)

// classifyTransport maps an http.Client error to an error kind.
func classifyTransport(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return ErrConnection
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}

// elapsedSeconds returns the wall-clock duration since start, rounded to
// millisecond precision.
func elapsedSeconds(start time.Time) float64 {
	return roundTo(time.Since(start).Seconds(), 3)
}
