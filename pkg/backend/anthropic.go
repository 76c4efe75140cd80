package backend

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/models"
)

// anthropicAdapter serves a tier through the Anthropic Messages API.
type anthropicAdapter struct {
	client anthropic.Client
	model  string
}

// NewAnthropicAdapter creates an adapter for the given endpoint. The
// API key is read from the endpoint's configured environment variable.
func NewAnthropicAdapter(ep *config.BackendEndpoint) Adapter {
	var opts []option.RequestOption
	if ep.APIKeyEnv != "" {
		opts = append(opts, option.WithAPIKey(os.Getenv(ep.APIKeyEnv)))
	}
	return &anthropicAdapter{
		client: anthropic.NewClient(opts...),
		model:  ep.Model,
	}
}

func (a *anthropicAdapter) Call(ctx context.Context, persona, payload string, opts Options) (Result, error) {
	maxTokens := int64(opts.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(payload)),
		},
	}
	if persona != "" {
		params.System = []anthropic.TextBlockParam{{Text: persona}}
	}
	if opts.Temperature > 0 {
		params.Temperature = anthropic.Float(opts.Temperature)
	}

	start := time.Now()
	msg, err := a.client.Messages.New(ctx, params)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return Result{}, &CallError{Kind: classifyAnthropicError(err), Err: err}
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return Result{
		Text: text.String(),
		Usage: Usage{
			InputTokens:  msg.Usage.InputTokens,
			OutputTokens: msg.Usage.OutputTokens,
		},
		LatencyMS: latency,
	}, nil
}

func classifyAnthropicError(err error) models.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.ErrKindTimeout
	}
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == 400 && strings.Contains(strings.ToLower(apierr.Error()), "too long"):
			return models.ErrKindContextOverflow
		case apierr.StatusCode >= 500, apierr.StatusCode == 429:
			return models.ErrKindBackend5xx
		}
	}
	return models.ErrKindBackend5xx
}
