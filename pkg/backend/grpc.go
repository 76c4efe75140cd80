package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/models"
	llmv1 "github.com/maestroworks/maestro/proto"
)

// grpcAdapter serves a tier through a model-serving sidecar speaking
// the ModelService contract (proto/llm.proto).
type grpcAdapter struct {
	conn   *grpc.ClientConn
	client llmv1.ModelServiceClient
}

// NewGRPCAdapter connects to the sidecar at the endpoint's address.
func NewGRPCAdapter(ep *config.BackendEndpoint) (Adapter, error) {
	conn, err := grpc.NewClient(ep.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model service at %s: %w", ep.Address, err)
	}
	return &grpcAdapter{
		conn:   conn,
		client: llmv1.NewModelServiceClient(conn),
	}, nil
}

func (a *grpcAdapter) Call(ctx context.Context, persona, payload string, opts Options) (Result, error) {
	req := &llmv1.CompleteRequest{
		Persona:     persona,
		Payload:     payload,
		MaxTokens:   int32(opts.MaxTokens),
		Temperature: float32(opts.Temperature),
	}

	start := time.Now()
	resp, err := a.client.Complete(ctx, req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return Result{}, &CallError{Kind: classifyGRPCError(err), Err: err}
	}

	result := Result{Text: resp.Text, LatencyMS: latency}
	if resp.Usage != nil {
		result.Usage = Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		}
	}
	return result, nil
}

// Close releases the gRPC connection.
func (a *grpcAdapter) Close() error {
	return a.conn.Close()
}

func classifyGRPCError(err error) models.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.ErrKindTimeout
	}
	st, ok := status.FromError(err)
	if !ok {
		return models.ErrKindBackend5xx
	}
	switch st.Code() {
	case codes.DeadlineExceeded:
		return models.ErrKindTimeout
	case codes.InvalidArgument, codes.OutOfRange:
		if strings.Contains(strings.ToLower(st.Message()), "context") {
			return models.ErrKindContextOverflow
		}
		return models.ErrKindBackend5xx
	default:
		return models.ErrKindBackend5xx
	}
}
