package backend

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/maestroworks/maestro/pkg/config"
	"github.com/maestroworks/maestro/pkg/models"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	cfg := config.DefaultBackendsConfig()
	// API-backed adapters are constructed lazily enough that no network
	// traffic happens until Call.
	r, err := NewRegistry(cfg)
	require.NoError(t, err)
	return r
}

func TestResolveFollowsTierRoutes(t *testing.T) {
	r := testRegistry(t)

	_, _, tier := r.Resolve(models.RoleCoder, models.StageAuditor, "rename a local variable")
	assert.Equal(t, config.TierBudget, tier)

	_, _, tier = r.Resolve(models.RoleStrategist, models.StageWriter, "compare two cache designs")
	assert.Equal(t, config.TierVIP, tier)
}

func TestResolveForcesVIPForHighRiskPayloads(t *testing.T) {
	r := testRegistry(t)

	_, _, tier := r.Resolve(models.RoleQA, models.StageWriter, "verify the payment retry flow")
	assert.Equal(t, config.TierVIP, tier)

	// Korean keywords count too.
	_, _, tier = r.Resolve(models.RoleQA, models.StageWriter, "결제 모듈 점검")
	assert.Equal(t, config.TierVIP, tier)

	_, _, tier = r.Resolve(models.RoleQA, models.StageWriter, "fix a typo in the README")
	assert.Equal(t, config.TierBudget, tier)
}

func TestKindOfClassification(t *testing.T) {
	assert.Equal(t, models.ErrKindTimeout, KindOf(context.DeadlineExceeded))
	assert.Equal(t, models.ErrKindBackend5xx, KindOf(errors.New("boom")))
	assert.Equal(t, models.ErrKindContextOverflow,
		KindOf(&CallError{Kind: models.ErrKindContextOverflow, Err: errors.New("too long")}))
}

func TestClassifyGRPCError(t *testing.T) {
	assert.Equal(t, models.ErrKindTimeout,
		classifyGRPCError(status.Error(codes.DeadlineExceeded, "deadline exceeded")))
	assert.Equal(t, models.ErrKindContextOverflow,
		classifyGRPCError(status.Error(codes.InvalidArgument, "context window exceeded")))
	assert.Equal(t, models.ErrKindBackend5xx,
		classifyGRPCError(status.Error(codes.Unavailable, "connection refused")))
}

func TestClassifyOpenAIError(t *testing.T) {
	overflow := &openai.APIError{HTTPStatusCode: 400, Message: "maximum context length exceeded"}
	assert.Equal(t, models.ErrKindContextOverflow, classifyOpenAIError(overflow))

	throttled := &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
	assert.Equal(t, models.ErrKindBackend5xx, classifyOpenAIError(throttled))
}
