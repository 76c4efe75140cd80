package escalate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/models"
)

func newEscalator(t *testing.T) *Escalator {
	t.Helper()
	e, err := New(DefaultCapacity)
	require.NoError(t, err)
	return e
}

func TestLadderSelfRepairThenSwitchThenHardFail(t *testing.T) {
	e := newEscalator(t)
	sig := NewSignature(models.ErrKindSemanticNull, nil, models.RoleCoder, "implement feature X")

	first := e.OnFailure("p1", sig, "diff too short")
	assert.Equal(t, LevelSelfRepair, first.Level)
	assert.Equal(t, 1, first.Count)
	assert.Equal(t, models.RoleCoder, first.RetryRole)
	assert.True(t, strings.HasPrefix(first.Feedback, "[ERROR_FEEDBACK]"))

	second := e.OnFailure("p1", sig, "diff too short")
	assert.Equal(t, LevelRoleSwitch, second.Level)
	assert.Equal(t, models.RoleReviewer, second.RetryRole)
	assert.True(t, second.RoleSwitched)
	assert.True(t, strings.HasPrefix(second.Feedback, "[ROLE_SWITCH]"))

	third := e.OnFailure("p1", sig, "diff too short")
	assert.Equal(t, LevelHardFail, third.Level)
	assert.Equal(t, 3, third.Count)
}

func TestLevelsAreMonotonic(t *testing.T) {
	e := newEscalator(t)
	sig := NewSignature(models.ErrKindJSONParse, []string{"diff"}, models.RoleCoder, "p")

	var ranks []int
	for i := 0; i < 6; i++ {
		d := e.OnFailure("p1", sig, "x")
		ranks = append(ranks, d.Level.rank())
	}
	for i := 1; i < len(ranks); i++ {
		assert.GreaterOrEqual(t, ranks[i], ranks[i-1])
	}
	assert.Equal(t, 2, ranks[len(ranks)-1])
}

func TestRoleSwitchOncePerRolePerPipeline(t *testing.T) {
	e := newEscalator(t)

	// Distinct signatures for the same role: the second signature to
	// reach count==2 finds the switch consumed and hard-fails.
	sigA := NewSignature(models.ErrKindSemanticNull, nil, models.RoleQA, "prompt A")
	sigB := NewSignature(models.ErrKindJSONParse, []string{"tests"}, models.RoleQA, "prompt B")

	e.OnFailure("p1", sigA, "x")
	switched := e.OnFailure("p1", sigA, "x")
	assert.Equal(t, LevelRoleSwitch, switched.Level)
	assert.Equal(t, models.RoleCoder, switched.RetryRole)

	e.OnFailure("p1", sigB, "x")
	exhausted := e.OnFailure("p1", sigB, "x")
	assert.Equal(t, LevelHardFail, exhausted.Level)
	assert.False(t, exhausted.RoleSwitched)

	// A different pipeline has its own switch budget.
	sigC := NewSignature(models.ErrKindSemanticNull, nil, models.RoleQA, "prompt A")
	e.OnFailure("p2", sigC, "x")
	fresh := e.OnFailure("p2", sigC, "x")
	assert.Equal(t, LevelHardFail, fresh.Level) // same signature already at hard_fail
}

func TestUnswitchableRoleSkipsToHardFail(t *testing.T) {
	e := newEscalator(t)
	sig := NewSignature(models.ErrKindJSONParse, []string{"action"}, models.RolePM, "plan the work")

	e.OnFailure("p1", sig, "x")
	d := e.OnFailure("p1", sig, "x")
	assert.Equal(t, LevelHardFail, d.Level)
	assert.False(t, d.RoleSwitched)
}

func TestSignatureEquivalence(t *testing.T) {
	a := NewSignature(models.ErrKindJSONParse, []string{"diff", "summary"}, models.RoleCoder, "prompt")
	b := NewSignature(models.ErrKindJSONParse, []string{"summary", "diff"}, models.RoleCoder, "prompt")
	assert.Equal(t, a, b, "field order must not split the class")

	// Only the first 500 bytes of the prompt participate.
	long := strings.Repeat("z", 600)
	c := NewSignature(models.ErrKindTimeout, nil, models.RoleCoder, long)
	d := NewSignature(models.ErrKindTimeout, nil, models.RoleCoder, long[:500]+"different tail")
	assert.Equal(t, c, d)

	e := NewSignature(models.ErrKindTimeout, nil, models.RoleQA, long)
	assert.NotEqual(t, c, e)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	e := newEscalator(t)
	sig := NewSignature(models.ErrKindSemanticNull, nil, models.RoleCoder, "p")
	e.OnFailure("p1", sig, "x")
	e.OnFailure("p1", sig, "x")

	var buf bytes.Buffer
	require.NoError(t, e.Snapshot(&buf))

	restored := newEscalator(t)
	require.NoError(t, restored.Restore(&buf))

	rec, ok := restored.Lookup(sig)
	require.True(t, ok)
	assert.Equal(t, 2, rec.Count)
	assert.Equal(t, LevelRoleSwitch, rec.Level)

	// The next failure on the restored instance continues the ladder.
	d := restored.OnFailure("p1", sig, "x")
	assert.Equal(t, LevelHardFail, d.Level)
}

func TestRestoreRejectsCorruptSnapshot(t *testing.T) {
	e := newEscalator(t)
	err := e.Restore(strings.NewReader("{broken"))
	assert.Error(t, err)
}
