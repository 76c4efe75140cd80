package supervisor

import (
	"context"
	"fmt"

	"github.com/maestroworks/maestro/pkg/backend"
	"github.com/maestroworks/maestro/pkg/models"
)

// backendCompactor summarizes an overflowing payload with the cheapest
// configured tier. The head of the payload (task statement) is kept
// verbatim; only the tail context is summarized.
type backendCompactor struct {
	backends *backend.Registry
}

// NewBackendCompactor returns a Compactor backed by the analyst role's
// budget-tier route.
func NewBackendCompactor(backends *backend.Registry) Compactor {
	return &backendCompactor{backends: backends}
}

// keepHeadRunes is the prefix preserved verbatim during compaction.
const keepHeadRunes = 2000

func (c *backendCompactor) Compact(ctx context.Context, payload string, targetRatio float64) (string, error) {
	runes := []rune(payload)
	if len(runes) <= keepHeadRunes {
		return payload, nil
	}
	head := string(runes[:keepHeadRunes])
	tail := string(runes[keepHeadRunes:])

	target := int(float64(len(runes)) * targetRatio)
	prompt := fmt.Sprintf(
		"Summarize the following context to roughly %d characters. Keep file names, "+
			"error messages, and decisions verbatim; drop narration.\n\n%s",
		target, tail)

	adapter, opts, _ := c.backends.Resolve(models.RoleAnalyst, models.StageWriter, "")
	result, err := adapter.Call(ctx, "", prompt, opts)
	if err != nil {
		return "", fmt.Errorf("compaction call failed: %w", err)
	}

	return fmt.Sprintf("%s\n\n[COMPACTED CONTEXT]\n%s", head, result.Text), nil
}
