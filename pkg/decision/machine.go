// Package decision converts a PM output into the pipeline's next
// transition. The state graph is fixed; anything the graph forbids is
// rejected, and operator-approval conditions force escalation no
// matter what the PM claimed.
package decision

import (
	"fmt"
	"strings"

	"github.com/maestroworks/maestro/pkg/contract"
	"github.com/maestroworks/maestro/pkg/guard"
	"github.com/maestroworks/maestro/pkg/models"
)

// Action is a pipeline transition state.
type Action string

// Pipeline actions.
const (
	ActionDispatch Action = "DISPATCH"
	ActionRetry    Action = "RETRY"
	ActionBlocked  Action = "BLOCKED"
	ActionEscalate Action = "ESCALATE"
	ActionDone     Action = "DONE"
)

// allowedTransitions is the full state graph. DONE is terminal.
var allowedTransitions = map[Action]map[Action]bool{
	ActionDispatch: {ActionRetry: true, ActionDone: true, ActionBlocked: true},
	ActionRetry:    {ActionDispatch: true, ActionBlocked: true},
	ActionBlocked:  {ActionEscalate: true},
	ActionEscalate: {ActionDone: true},
	ActionDone:     {},
}

// InvalidTransitionError reports a transition outside the graph.
type InvalidTransitionError struct {
	From, To Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", models.ErrKindInvalidTransition, e.From, e.To)
}

// ValidateTransition returns an error when from→to is outside the
// allowed state graph.
func ValidateTransition(from, to Action) error {
	if allowedTransitions[from][to] {
		return nil
	}
	return &InvalidTransitionError{From: from, To: to}
}

// Reason classifies why a pipeline needs operator approval.
type Reason string

// Escalation reasons.
const (
	ReasonDeploy     Reason = "deploy"
	ReasonAPIKey     Reason = "api_key"
	ReasonPayment    Reason = "payment"
	ReasonDataDelete Reason = "data_delete"
	ReasonDependency Reason = "dependency"
	ReasonSecurity   Reason = "security"
	ReasonNone       Reason = "none"
)

// escalationKeywords detect approval-required work in PM summaries and
// task instructions, bilingual. Order matters: the first matching
// reason wins.
var escalationKeywords = []struct {
	reason   Reason
	keywords []string
}{
	{ReasonDeploy, []string{"배포", "deploy", "production", "운영", "릴리즈", "release"}},
	{ReasonAPIKey, []string{"api key", "api_key", "apikey", "토큰", "token", "credential", "인증키"}},
	{ReasonPayment, []string{"결제", "payment", "billing", "요금", "cost", "비용 발생"}},
	{ReasonDataDelete, []string{"삭제", "delete", "drop", "truncate", "remove 데이터"}},
	{ReasonDependency, []string{"pip install", "npm install", "의존성", "dependency", "패키지 추가"}},
	{ReasonSecurity, []string{"보안", "security", "인증", "auth", "권한", "permission"}},
}

// agentKeywords map free-text instructions to the best-fitting role
// when the PM omits an explicit agent.
var agentKeywords = map[models.Role][]string{
	models.RoleCoder:      {"구현", "수정", "코드", "fix", "implement", "refactor", "버그"},
	models.RoleQA:         {"테스트", "검증", "test", "verify", "qa", "재현"},
	models.RoleReviewer:   {"리뷰", "review", "검토", "approve", "보안 검토"},
	models.RoleStrategist: {"전략", "strategy", "분석", "설계", "아키텍처", "원인 분석"},
	models.RoleAnalyst:    {"로그", "log", "요약", "압축", "대용량"},
	models.RoleResearcher: {"검색", "search", "최신", "문서", "공식 문서", "리서치"},
	models.RoleExcavator:  {"요구사항", "requirement", "불명확", "모순", "clarify"},
}

// Decision is the normalized result of processing a PM output.
type Decision struct {
	Action     Action              `json:"action"`
	Targets    []models.Role       `json:"targets,omitempty"`
	Tasks      []contract.TaskSpec `json:"tasks,omitempty"`
	Summary    string              `json:"summary"`
	Reason     Reason              `json:"reason,omitempty"`
	Confidence float64             `json:"confidence"`
}

// Process maps a parsed PM output to a decision. Approval-required
// keywords override the stated action; a DISPATCH without usable tasks
// collapses to BLOCKED.
func Process(pm *contract.PMOutput) Decision {
	action := Action(strings.ToUpper(pm.Action))
	summary := strings.TrimSpace(pm.Summary)

	// Confidence is metadata only, never a gate. Vacuous or too-short
	// summaries halve it.
	confidence := 1.0
	if len([]rune(summary)) < 5 || guard.ContainsNullPhrase(summary) {
		confidence = 0.5
	}

	// Approval-required conditions always escalate, whatever the PM
	// decided.
	reason := inferReason(summary, pm.Tasks)
	if pm.RequiresCEO || action == ActionEscalate || reason != ReasonNone {
		return Decision{
			Action:     ActionEscalate,
			Summary:    summary,
			Reason:     reason,
			Confidence: confidence,
		}
	}

	switch action {
	case ActionDispatch:
		return buildDispatch(pm, summary, confidence)

	case ActionRetry:
		return Decision{Action: ActionRetry, Summary: summary, Reason: ReasonNone, Confidence: confidence}

	case ActionDone:
		if summary == "" {
			return Decision{
				Action:     ActionBlocked,
				Summary:    "DONE without a summary",
				Reason:     ReasonNone,
				Confidence: 0,
			}
		}
		return Decision{Action: ActionDone, Summary: summary, Reason: ReasonNone, Confidence: confidence}

	case ActionBlocked:
		return Decision{Action: ActionBlocked, Summary: summary, Reason: ReasonNone, Confidence: confidence}

	default:
		return Decision{
			Action:     ActionBlocked,
			Summary:    fmt.Sprintf("unknown action: %s", pm.Action),
			Reason:     ReasonNone,
			Confidence: 0,
		}
	}
}

func buildDispatch(pm *contract.PMOutput, summary string, confidence float64) Decision {
	if len(pm.Tasks) == 0 {
		return Decision{
			Action:     ActionBlocked,
			Summary:    "DISPATCH without tasks",
			Reason:     ReasonNone,
			Confidence: 0,
		}
	}

	var targets []models.Role
	var tasks []contract.TaskSpec
	seen := make(map[models.Role]bool)
	for _, task := range pm.Tasks {
		role := models.Role(strings.ToLower(task.Agent))
		if !models.DispatchableRoles[role] {
			// Unknown agents are dropped, not fatal.
			continue
		}
		tasks = append(tasks, task)
		if !seen[role] {
			seen[role] = true
			targets = append(targets, role)
		}
	}

	if len(targets) == 0 {
		return Decision{
			Action:     ActionBlocked,
			Summary:    "no valid dispatch targets",
			Reason:     ReasonNone,
			Confidence: 0,
		}
	}

	return Decision{
		Action:     ActionDispatch,
		Targets:    targets,
		Tasks:      tasks,
		Summary:    summary,
		Reason:     ReasonNone,
		Confidence: confidence,
	}
}

// inferReason scans the summary and task text for approval-required
// keywords.
func inferReason(summary string, tasks []contract.TaskSpec) Reason {
	var b strings.Builder
	b.WriteString(strings.ToLower(summary))
	for _, task := range tasks {
		b.WriteString(" ")
		b.WriteString(strings.ToLower(task.Instruction))
		b.WriteString(" ")
		b.WriteString(strings.ToLower(task.Context))
	}
	text := b.String()

	for _, group := range escalationKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.reason
			}
		}
	}
	return ReasonNone
}

// InferAgent picks the role whose keyword set scores highest against a
// free-text prompt. Used when a task omits its agent.
func InferAgent(prompt string) (models.Role, bool) {
	text := strings.ToLower(prompt)

	var best models.Role
	bestScore := 0
	for role, keywords := range agentKeywords {
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = role, score
		}
	}
	return best, bestScore > 0
}
