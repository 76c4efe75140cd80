package contract

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/models"
)

func TestParseCoderFromFencedBlock(t *testing.T) {
	raw := "Here is the change:\n```json\n" + `{
		"summary": "Fix login redirect after session expiry",
		"files_changed": ["src/api/auth.go"],
		"diff": "--- a/src/api/auth.go\n+++ b/src/api/auth.go\n@@ -10,3 +10,4 @@\n+ return ok"
	}` + "\n```\nDone."

	out, meta, err := Parse(models.RoleCoder, raw)
	require.NoError(t, err)
	assert.False(t, meta.DegradedParse)

	coder, ok := out.(*CoderOutput)
	require.True(t, ok)
	assert.Equal(t, []string{"src/api/auth.go"}, coder.FilesChanged)
	assert.True(t, strings.HasPrefix(coder.Diff, "--- "))
}

func TestParseBareObjectRequiresKeyIntersection(t *testing.T) {
	raw := `Preamble text {"verdict": "PASS", "tests": [{"name": "t1", "result": "PASS"}]} trailing`

	out, _, err := Parse(models.RoleQA, raw)
	require.NoError(t, err)

	qa, ok := out.(*QAOutput)
	require.True(t, ok)
	assert.Equal(t, models.VerdictPass, qa.Verdict)
	require.Len(t, qa.Tests, 1)
	assert.Equal(t, "t1", qa.Tests[0].Name)
}

func TestParseMissingFieldsReported(t *testing.T) {
	_, _, err := Parse(models.RoleCoder, `{"summary": "did things"}`)
	require.Error(t, err)

	var pf *ParseFailure
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, models.ErrKindJSONParse, pf.Kind)
	assert.Equal(t, []string{"diff", "files_changed"}, pf.MissingFields)
}

func TestVerdictAliasNormalization(t *testing.T) {
	cases := []struct {
		role models.Role
		raw  string
		want models.Verdict
	}{
		{models.RoleReviewer, "SHIP", models.VerdictApprove},
		{models.RoleReviewer, "hold", models.VerdictRevise},
		{models.RoleReviewer, "NEED_INFO", models.VerdictRevise},
		{models.RoleReviewer, "REJECT", models.VerdictReject},
		{models.RoleQA, "DONE", models.VerdictPass},
		{models.RoleQA, "FAIL", models.VerdictFail},
		{models.RoleStamp, "PASS", models.VerdictApprove},
		{models.RoleStamp, "HOLD", models.VerdictReject},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, canonicalFor(tc.role, tc.raw), "role=%s raw=%s", tc.role, tc.raw)
	}
}

func TestDegradedParseScansTail(t *testing.T) {
	raw := "I could not format the response as requested, but my final verdict is APPROVE."

	out, meta, err := Parse(models.RoleReviewer, raw)
	require.NoError(t, err)
	assert.True(t, meta.DegradedParse)
	assert.Equal(t, "APPROVE", meta.RawVerdict)

	reviewer, ok := out.(*ReviewerOutput)
	require.True(t, ok)
	assert.Equal(t, models.VerdictApprove, reviewer.Verdict)
	assert.Empty(t, reviewer.Risks)
}

func TestDegradedParseNotAppliedToCoder(t *testing.T) {
	_, _, err := Parse(models.RoleCoder, "no structure here, APPROVE")
	require.Error(t, err)

	var pf *ParseFailure
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, models.ErrKindJSONParse, pf.Kind)
}

func TestReviewerRangeValidation(t *testing.T) {
	_, _, err := Parse(models.RoleReviewer, `{"verdict": "APPROVE", "security_score": 11}`)
	require.Error(t, err)

	var pf *ParseFailure
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, models.ErrKindInvalidValue, pf.Kind)
}

func TestPMActionValidation(t *testing.T) {
	out, _, err := Parse(models.RolePM, `{"action": "DISPATCH", "summary": "fan out work", "tasks": [{"task_id": "t1", "agent": "coder", "instruction": "implement"}]}`)
	require.NoError(t, err)

	pm, ok := out.(*PMOutput)
	require.True(t, ok)
	assert.Len(t, pm.Tasks, 1)

	_, _, err = Parse(models.RolePM, `{"action": "LAUNCH", "summary": "??"}`)
	var pf *ParseFailure
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, models.ErrKindInvalidValue, pf.Kind)
}

func TestGenericRolePassesThrough(t *testing.T) {
	out, _, err := Parse(models.RoleResearcher, "findings: the dependency is abandoned upstream")
	require.NoError(t, err)

	generic, ok := out.(*GenericOutput)
	require.True(t, ok)
	assert.Equal(t, models.RoleResearcher, generic.AgentRole())
	assert.Contains(t, generic.Text, "abandoned")
}

// Serialize→parse round-trips for every typed role.
func TestRoundTrip(t *testing.T) {
	outputs := []AgentOutput{
		&CoderOutput{Summary: "refactor queue claim path", FilesChanged: []string{"pkg/queue/worker.go"}, Diff: "--- a\n+++ b\n@@ -1 +1 @@\n+x"},
		&QAOutput{Verdict: models.VerdictFail, Tests: []TestCase{{Name: "TestClaim", Result: "FAIL", Reason: "deadlock"}}, IssuesFound: []string{"lease not released"}},
		&ReviewerOutput{Verdict: models.VerdictRevise, SecurityScore: 7, Risks: []Risk{{Severity: "HIGH", Issue: "unchecked input", File: "api.go", Line: 42}}},
		&PMOutput{Action: "DONE", Summary: "all stages complete"},
		&StrategistOutput{ProblemSummary: "cache stampede", Options: []Option{{Name: "lock"}, {Name: "jitter"}}, Recommendation: "jitter", Reasoning: "cheaper"},
		&CouncilMemberOutput{Score: 8.5, Reasoning: "solid risk posture, minor gaps in rollout plan"},
		&StampOutput{Verdict: models.VerdictApprove, Score: 9},
	}

	for _, original := range outputs {
		data, err := json.Marshal(original)
		require.NoError(t, err)

		parsed, _, err := Parse(original.AgentRole(), string(data))
		require.NoError(t, err, "role=%s", original.AgentRole())
		assert.Equal(t, original, parsed, "role=%s", original.AgentRole())
	}
}
