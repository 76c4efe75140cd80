// Package backend abstracts the model endpoints the supervisor calls.
// The core is indifferent to the model family behind an adapter; it
// sees text in, text out, plus usage and latency.
package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/maestroworks/maestro/pkg/models"
)

// Options tune a single call.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Usage reports token consumption for a call.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// Result is a completed backend call.
type Result struct {
	Text      string `json:"text"`
	Usage     Usage  `json:"usage"`
	LatencyMS int64  `json:"latency_ms"`
}

// Adapter is the single operation the core needs from a model backend.
type Adapter interface {
	Call(ctx context.Context, persona, payload string, opts Options) (Result, error)
}

// CallError classifies a failed backend call so the supervisor can
// decide between retry, compaction, and escalation.
type CallError struct {
	Kind models.ErrorKind
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("backend call failed (%s): %v", e.Kind, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind from a backend error, defaulting to
// backend_5xx for unclassified failures.
func KindOf(err error) models.ErrorKind {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return models.ErrKindTimeout
	}
	return models.ErrKindBackend5xx
}
