package guard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/contract"
	"github.com/maestroworks/maestro/pkg/models"
)

func violationKind(t *testing.T, err error) models.ErrorKind {
	t.Helper()
	var v *Violation
	require.True(t, errors.As(err, &v), "expected *Violation, got %v", err)
	return v.Kind
}

func validCoder() *contract.CoderOutput {
	return &contract.CoderOutput{
		Summary:      "fix login redirect in auth.go file",
		FilesChanged: []string{"src/api/auth.go"},
		Diff:         "--- a/src/api/auth.go\n+++ b/src/api/auth.go\n@@ -10,3 +10,4 @@\n+ return ok",
	}
}

func TestValidCoderOutputPasses(t *testing.T) {
	assert.NoError(t, Check(validCoder()))
}

func TestBlacklistPhraseRejected(t *testing.T) {
	out := validCoder()
	out.Summary = "I have reviewed the file and it looks correct"
	assert.Equal(t, models.ErrKindSemanticNull, violationKind(t, Check(out)))

	out = validCoder()
	out.TodoNext = "검토했습니다"
	assert.Equal(t, models.ErrKindSemanticNull, violationKind(t, Check(out)))
}

func TestCoderSummaryTooShort(t *testing.T) {
	out := validCoder()
	out.Summary = "fix auth"
	assert.Equal(t, models.ErrKindFieldTooShort, violationKind(t, Check(out)))
}

func TestCoderSummaryWithoutVerbOrTarget(t *testing.T) {
	out := validCoder()
	out.Summary = "the problem with the thing yesterday"
	assert.Equal(t, models.ErrKindSemanticNull, violationKind(t, Check(out)))

	out = validCoder()
	out.Summary = "updated and improved everything somehow"
	assert.Equal(t, models.ErrKindSemanticNull, violationKind(t, Check(out)))
}

func TestCoderDiffRules(t *testing.T) {
	out := validCoder()
	out.Diff = "+ x"
	assert.Equal(t, models.ErrKindFieldTooShort, violationKind(t, Check(out)))

	out = validCoder()
	out.Diff = "changed some stuff around line ten"
	assert.Equal(t, models.ErrKindInvalidValue, violationKind(t, Check(out)))

	out = validCoder()
	out.FilesChanged = nil
	assert.Equal(t, models.ErrKindInvalidValue, violationKind(t, Check(out)))
}

func TestQAPassRequiresTests(t *testing.T) {
	out := &contract.QAOutput{Verdict: models.VerdictPass}
	assert.Equal(t, models.ErrKindInvalidValue, violationKind(t, Check(out)))

	out.Tests = []contract.TestCase{{Name: "TestAuth", Result: "PASS"}}
	assert.NoError(t, Check(out))

	// FAIL with no tests is acceptable: the run may not have started.
	assert.NoError(t, Check(&contract.QAOutput{Verdict: models.VerdictFail, IssuesFound: []string{"build broken"}}))
}

func TestReviewerRules(t *testing.T) {
	ok := &contract.ReviewerOutput{Verdict: models.VerdictApprove, SecurityScore: 8}
	assert.NoError(t, Check(ok))

	bad := &contract.ReviewerOutput{Verdict: models.VerdictApprove, SecurityScore: 11}
	assert.Equal(t, models.ErrKindInvalidValue, violationKind(t, Check(bad)))

	reject := &contract.ReviewerOutput{Verdict: models.VerdictReject, SecurityScore: 2}
	assert.Equal(t, models.ErrKindInvalidValue, violationKind(t, Check(reject)))

	reject.Risks = []contract.Risk{{Severity: "CRITICAL", Issue: "hardcoded credential"}}
	assert.NoError(t, Check(reject))
}

func TestCouncilRules(t *testing.T) {
	short := &contract.CouncilMemberOutput{Score: 7, Reasoning: "fine"}
	assert.Equal(t, models.ErrKindFieldTooShort, violationKind(t, Check(short)))

	outOfRange := &contract.CouncilMemberOutput{Score: 12, Reasoning: "scores beyond the scale are meaningless"}
	assert.Equal(t, models.ErrKindInvalidValue, violationKind(t, Check(outOfRange)))

	assert.NoError(t, Check(&contract.CouncilMemberOutput{
		Score:     6.5,
		Reasoning: "rollout plan covers migration but skips the backfill window",
	}))
}

func TestContainsNullPhrase(t *testing.T) {
	assert.True(t, ContainsNullPhrase("Everything is fine, nothing to report"))
	assert.True(t, ContainsNullPhrase("문제가 전혀 없습니다"))
	assert.False(t, ContainsNullPhrase("replaced the lease reaper with a transactional sweep"))
}
