package backend

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/models"
)

// openaiAdapter serves a tier through the OpenAI Chat Completions API.
// Any OpenAI-compatible endpoint works via the base URL.
type openaiAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates an adapter for the given endpoint.
func NewOpenAIAdapter(ep *config.BackendEndpoint) Adapter {
	cfg := openai.DefaultConfig(os.Getenv(ep.APIKeyEnv))
	if ep.Address != "" {
		cfg.BaseURL = ep.Address
	}
	return &openaiAdapter{
		client: openai.NewClientWithConfig(cfg),
		model:  ep.Model,
	}
}

func (a *openaiAdapter) Call(ctx context.Context, persona, payload string, opts Options) (Result, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if persona != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: persona,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: payload,
	})

	request := openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	}
	if opts.MaxTokens > 0 {
		request.MaxTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		request.Temperature = float32(opts.Temperature)
	}

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, request)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return Result{}, &CallError{Kind: classifyOpenAIError(err), Err: err}
	}
	if len(resp.Choices) == 0 {
		return Result{}, &CallError{Kind: models.ErrKindBackend5xx, Err: errors.New("completion has no choices")}
	}

	return Result{
		Text: resp.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  int64(resp.Usage.PromptTokens),
			OutputTokens: int64(resp.Usage.CompletionTokens),
		},
		LatencyMS: latency,
	}, nil
}

func classifyOpenAIError(err error) models.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.ErrKindTimeout
	}
	var apierr *openai.APIError
	if errors.As(err, &apierr) {
		switch {
		case apierr.HTTPStatusCode == 400 && strings.Contains(strings.ToLower(apierr.Message), "context length"):
			return models.ErrKindContextOverflow
		case apierr.HTTPStatusCode >= 500, apierr.HTTPStatusCode == 429:
			return models.ErrKindBackend5xx
		}
	}
	return models.ErrKindBackend5xx
}
