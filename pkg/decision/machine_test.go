package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestroworks/maestro/pkg/contract"
	"github.com/maestroworks/maestro/pkg/models"
)

func TestTransitionGraph(t *testing.T) {
	allowed := [][2]Action{
		{ActionDispatch, ActionRetry},
		{ActionDispatch, ActionDone},
		{ActionDispatch, ActionBlocked},
		{ActionRetry, ActionDispatch},
		{ActionRetry, ActionBlocked},
		{ActionBlocked, ActionEscalate},
		{ActionEscalate, ActionDone},
	}
	for _, pair := range allowed {
		assert.NoError(t, ValidateTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	forbidden := [][2]Action{
		{ActionDispatch, ActionEscalate},
		{ActionRetry, ActionEscalate},
		{ActionBlocked, ActionDispatch},
		{ActionDone, ActionRetry},
		{ActionDone, ActionDispatch},
		{ActionEscalate, ActionDispatch},
	}
	for _, pair := range forbidden {
		err := ValidateTransition(pair[0], pair[1])
		require.Error(t, err, "%s -> %s", pair[0], pair[1])
		var ite *InvalidTransitionError
		assert.ErrorAs(t, err, &ite)
	}
}

func TestProcessDispatch(t *testing.T) {
	d := Process(&contract.PMOutput{
		Action:  "DISPATCH",
		Summary: "구현 작업 분배",
		Tasks: []contract.TaskSpec{
			{TaskID: "t1", Agent: "coder", Instruction: "구현: 재시도 큐 수정"},
			{TaskID: "t2", Agent: "qa", Instruction: "검증: 커버리지 확장"},
			{TaskID: "t3", Agent: "coder", Instruction: "구현: 누락된 핸들러"},
		},
	})

	assert.Equal(t, ActionDispatch, d.Action)
	assert.Equal(t, []models.Role{models.RoleCoder, models.RoleQA}, d.Targets)
	assert.Len(t, d.Tasks, 3)
	assert.Equal(t, ReasonNone, d.Reason)
	assert.Equal(t, 1.0, d.Confidence)
}

func TestDispatchWithoutTasksBlocks(t *testing.T) {
	d := Process(&contract.PMOutput{Action: "DISPATCH", Summary: "하위 작업 분배 예정"})
	assert.Equal(t, ActionBlocked, d.Action)
	assert.Equal(t, 0.0, d.Confidence)
}

func TestDispatchWithOnlyUnknownAgentsBlocks(t *testing.T) {
	d := Process(&contract.PMOutput{
		Action:  "DISPATCH",
		Summary: "작업 분배",
		Tasks:   []contract.TaskSpec{{TaskID: "t1", Agent: "wizard", Instruction: "do magic"}},
	})
	assert.Equal(t, ActionBlocked, d.Action)
	assert.Empty(t, d.Targets)
}

func TestRequiresCEOForcesEscalate(t *testing.T) {
	d := Process(&contract.PMOutput{
		Action:      "DONE",
		Summary:     "모든 단계 완료",
		RequiresCEO: true,
	})
	assert.Equal(t, ActionEscalate, d.Action)
	assert.Equal(t, ReasonNone, d.Reason)
}

func TestKeywordOverridesStatedAction(t *testing.T) {
	d := Process(&contract.PMOutput{
		Action:  "DISPATCH",
		Summary: "ready to deploy production build",
		Tasks:   []contract.TaskSpec{{TaskID: "t1", Agent: "coder", Instruction: "구현 마무리"}},
	})
	assert.Equal(t, ActionEscalate, d.Action)
	assert.Equal(t, ReasonDeploy, d.Reason)
}

func TestReasonInferredFromTaskInstruction(t *testing.T) {
	d := Process(&contract.PMOutput{
		Action:  "ESCALATE",
		Summary: "승인 필요",
		Tasks:   []contract.TaskSpec{{TaskID: "t1", Agent: "coder", Instruction: "pip install requests 후 적용"}},
	})
	assert.Equal(t, ActionEscalate, d.Action)
	assert.Equal(t, ReasonDependency, d.Reason)
}

func TestEscalateWithoutKeywordGetsReasonNone(t *testing.T) {
	d := Process(&contract.PMOutput{Action: "ESCALATE", Summary: "진행 불가, 판단 요청"})
	assert.Equal(t, ActionEscalate, d.Action)
	assert.Equal(t, ReasonNone, d.Reason)
}

func TestVacuousSummaryHalvesConfidence(t *testing.T) {
	d := Process(&contract.PMOutput{Action: "DONE", Summary: "I have reviewed and everything is fine overall"})
	assert.Equal(t, ActionDone, d.Action)
	assert.Equal(t, 0.5, d.Confidence)

	short := Process(&contract.PMOutput{Action: "DONE", Summary: "ok"})
	assert.Equal(t, 0.5, short.Confidence)
}

func TestDoneWithoutSummaryBlocks(t *testing.T) {
	d := Process(&contract.PMOutput{Action: "DONE", Summary: "   "})
	assert.Equal(t, ActionBlocked, d.Action)
}

func TestUnknownActionBlocks(t *testing.T) {
	d := Process(&contract.PMOutput{Action: "LAUNCH", Summary: "뭔가 이상함"})
	assert.Equal(t, ActionBlocked, d.Action)
	assert.Equal(t, 0.0, d.Confidence)
}

func TestInferAgent(t *testing.T) {
	role, ok := InferAgent("재현 가능한 테스트 케이스로 검증해줘")
	require.True(t, ok)
	assert.Equal(t, models.RoleQA, role)

	role, ok = InferAgent("요구사항이 불명확해서 clarify 필요")
	require.True(t, ok)
	assert.Equal(t, models.RoleExcavator, role)

	_, ok = InferAgent("nothing relevant here")
	assert.False(t, ok)
}
