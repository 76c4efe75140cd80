// Package contract converts raw model completions into typed,
// validated per-role outputs. Extraction tolerates prose around the
// JSON body; validation enforces each role's schema.
package contract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maestroworks/maestro/pkg/models"
)

// AgentOutput is the typed result of one role's completed work.
type AgentOutput interface {
	// AgentRole returns the role whose schema this output satisfies.
	AgentRole() models.Role
	// Validate checks fields, types, and value ranges. Violations are
	// returned as *ParseFailure.
	Validate() error
}

// ParseFailure describes why a completion could not be converted into
// a typed output.
type ParseFailure struct {
	Kind          models.ErrorKind
	Reason        string
	MissingFields []string
}

func (e *ParseFailure) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("%s: %s (missing: %s)", e.Kind, e.Reason, strings.Join(e.MissingFields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func newParseFailure(kind models.ErrorKind, reason string, missing ...string) *ParseFailure {
	sort.Strings(missing)
	return &ParseFailure{Kind: kind, Reason: reason, MissingFields: missing}
}

// CoderOutput is the coder role's structured result.
type CoderOutput struct {
	Summary      string   `json:"summary"`
	FilesChanged []string `json:"files_changed"`
	Diff         string   `json:"diff"`
	TodoNext     string   `json:"todo_next,omitempty"`
}

func (o *CoderOutput) AgentRole() models.Role { return models.RoleCoder }

func (o *CoderOutput) Validate() error {
	var missing []string
	if o.Summary == "" {
		missing = append(missing, "summary")
	}
	if o.Diff == "" {
		missing = append(missing, "diff")
	}
	if len(missing) > 0 {
		return newParseFailure(models.ErrKindJSONParse, "coder output incomplete", missing...)
	}
	return nil
}

// TestCase is one test's outcome inside a QA report.
type TestCase struct {
	Name   string `json:"name"`
	Result string `json:"result"`
	Reason string `json:"reason,omitempty"`
}

// QAOutput is the qa role's structured result.
type QAOutput struct {
	Verdict         models.Verdict `json:"verdict"`
	Tests           []TestCase     `json:"tests"`
	CoverageSummary string         `json:"coverage_summary,omitempty"`
	IssuesFound     []string       `json:"issues_found,omitempty"`
}

func (o *QAOutput) AgentRole() models.Role { return models.RoleQA }

func (o *QAOutput) Validate() error {
	switch o.Verdict {
	case models.VerdictPass, models.VerdictFail, models.VerdictSkip:
	case "":
		return newParseFailure(models.ErrKindJSONParse, "qa output incomplete", "verdict")
	default:
		return newParseFailure(models.ErrKindInvalidValue,
			fmt.Sprintf("qa verdict %q not in PASS/FAIL/SKIP", o.Verdict))
	}
	return nil
}

// Risk is one finding inside a reviewer report.
type Risk struct {
	Severity      string `json:"severity"`
	File          string `json:"file,omitempty"`
	Line          int    `json:"line,omitempty"`
	Issue         string `json:"issue"`
	FixSuggestion string `json:"fix_suggestion,omitempty"`
}

var riskSeverities = map[string]bool{
	"CRITICAL": true, "HIGH": true, "MEDIUM": true, "LOW": true,
}

// ReviewerOutput is the reviewer role's structured result.
type ReviewerOutput struct {
	Verdict       models.Verdict `json:"verdict"`
	Risks         []Risk         `json:"risks,omitempty"`
	SecurityScore int            `json:"security_score"`
	ApprovedFiles []string       `json:"approved_files,omitempty"`
	BlockedFiles  []string       `json:"blocked_files,omitempty"`
}

func (o *ReviewerOutput) AgentRole() models.Role { return models.RoleReviewer }

func (o *ReviewerOutput) Validate() error {
	switch o.Verdict {
	case models.VerdictApprove, models.VerdictRevise, models.VerdictReject:
	case "":
		return newParseFailure(models.ErrKindJSONParse, "reviewer output incomplete", "verdict")
	default:
		return newParseFailure(models.ErrKindInvalidValue,
			fmt.Sprintf("reviewer verdict %q not in APPROVE/REVISE/REJECT", o.Verdict))
	}
	if o.SecurityScore < 0 || o.SecurityScore > 10 {
		return newParseFailure(models.ErrKindInvalidValue,
			fmt.Sprintf("security_score %d outside 0-10", o.SecurityScore))
	}
	for _, r := range o.Risks {
		if !riskSeverities[strings.ToUpper(r.Severity)] {
			return newParseFailure(models.ErrKindInvalidValue,
				fmt.Sprintf("risk severity %q not in CRITICAL/HIGH/MEDIUM/LOW", r.Severity))
		}
	}
	return nil
}

// Option is one alternative inside a strategist report.
type Option struct {
	Name   string `json:"name"`
	Pros   string `json:"pros"`
	Cons   string `json:"cons"`
	Effort string `json:"effort"`
	Risk   string `json:"risk"`
}

// StrategistOutput is the strategist role's structured result.
type StrategistOutput struct {
	ProblemSummary string   `json:"problem_summary"`
	Options        []Option `json:"options"`
	Recommendation string   `json:"recommendation"`
	Reasoning      string   `json:"reasoning"`
}

func (o *StrategistOutput) AgentRole() models.Role { return models.RoleStrategist }

func (o *StrategistOutput) Validate() error {
	var missing []string
	if o.ProblemSummary == "" {
		missing = append(missing, "problem_summary")
	}
	if o.Recommendation == "" {
		missing = append(missing, "recommendation")
	}
	if len(missing) > 0 {
		return newParseFailure(models.ErrKindJSONParse, "strategist output incomplete", missing...)
	}
	if len(o.Options) < 2 || len(o.Options) > 4 {
		return newParseFailure(models.ErrKindInvalidValue,
			fmt.Sprintf("strategist options count %d outside 2-4", len(o.Options)))
	}
	return nil
}

// TaskSpec describes one successor job requested by the PM.
type TaskSpec struct {
	TaskID      string `json:"task_id"`
	Agent       string `json:"agent"`
	Instruction string `json:"instruction"`
	Context     string `json:"context,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// PMOutput is the project-manager role's structured decision.
type PMOutput struct {
	Action      string     `json:"action"`
	Tasks       []TaskSpec `json:"tasks,omitempty"`
	Summary     string     `json:"summary"`
	RequiresCEO bool       `json:"requires_ceo,omitempty"`
}

func (o *PMOutput) AgentRole() models.Role { return models.RolePM }

var pmActions = map[string]bool{
	"DISPATCH": true, "RETRY": true, "BLOCKED": true, "ESCALATE": true, "DONE": true,
}

func (o *PMOutput) Validate() error {
	action := strings.ToUpper(o.Action)
	if action == "" {
		return newParseFailure(models.ErrKindJSONParse, "pm output incomplete", "action")
	}
	if !pmActions[action] {
		return newParseFailure(models.ErrKindInvalidValue,
			fmt.Sprintf("pm action %q not recognized", o.Action))
	}
	return nil
}

// CouncilMemberOutput is one council member's scored assessment.
type CouncilMemberOutput struct {
	Score     float64  `json:"score"`
	Reasoning string   `json:"reasoning"`
	Concerns  []string `json:"concerns,omitempty"`
	Approvals []string `json:"approvals,omitempty"`
}

func (o *CouncilMemberOutput) AgentRole() models.Role { return models.RoleCouncil }

func (o *CouncilMemberOutput) Validate() error {
	if o.Score < 0 || o.Score > 10 {
		return newParseFailure(models.ErrKindInvalidValue,
			fmt.Sprintf("council score %.1f outside 0-10", o.Score))
	}
	if o.Reasoning == "" {
		return newParseFailure(models.ErrKindJSONParse, "council output incomplete", "reasoning")
	}
	return nil
}

// StampOutput is the terminal advisory verdict emitted after audit.
// Advisory for approval, binding for requires_escalation.
type StampOutput struct {
	Verdict            models.Verdict `json:"verdict"`
	Score              float64        `json:"score"`
	BlockingIssues     []string       `json:"blocking_issues,omitempty"`
	RequiresEscalation bool           `json:"requires_escalation,omitempty"`
}

func (o *StampOutput) AgentRole() models.Role { return models.RoleStamp }

func (o *StampOutput) Validate() error {
	switch o.Verdict {
	case models.VerdictApprove, models.VerdictReject:
	case "":
		return newParseFailure(models.ErrKindJSONParse, "stamp output incomplete", "verdict")
	default:
		return newParseFailure(models.ErrKindInvalidValue,
			fmt.Sprintf("stamp verdict %q not in APPROVE/REJECT", o.Verdict))
	}
	return nil
}

// GenericOutput covers roles without a dedicated schema (excavator,
// researcher, analyst). The raw text is passed through untyped.
type GenericOutput struct {
	Role models.Role `json:"-"`
	Text string      `json:"text"`
}

func (o *GenericOutput) AgentRole() models.Role { return o.Role }

func (o *GenericOutput) Validate() error {
	if strings.TrimSpace(o.Text) == "" {
		return newParseFailure(models.ErrKindJSONParse, "empty completion", "text")
	}
	return nil
}
