// Package guard rejects worker outputs that are syntactically valid
// but semantically empty. Checks are code-only: a bilingual blacklist
// of vacuous phrases plus per-role field minimums.
package guard

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/maestroworks/maestro/pkg/contract"
	"github.com/maestroworks/maestro/pkg/models"
)

// Violation is a guard rejection, fed to the escalator by callers.
type Violation struct {
	Kind   models.ErrorKind
	Field  string
	Detail string
}

func (v *Violation) Error() string {
	if v.Field != "" {
		return fmt.Sprintf("%s: field %q %s", v.Kind, v.Field, v.Detail)
	}
	return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
}

// nullPatterns match phrases that state review happened without saying
// anything — the Korean and English boilerplate models fall back on.
var nullPatterns = compileAll(
	`검토했습니다`, `확인했습니다`, `문제.*없습니다`,
	`추가.*확인.*필요`, `이상.*없음`, `정상.*처리`,
	`완료.*되었습니다`, `진행.*하겠습니다`, `살펴보겠습니다`,
	`looks good`, `no issues`, `seems fine`, `will proceed`,
	`I have reviewed`, `I checked`, `everything is fine`, `no problems found`,
)

// verbPatterns and targetPatterns back the coder summary rule: a real
// change summary names an action and what it acted on.
var verbPatterns = compileAll(
	`수정`, `추가`, `삭제`, `변경`, `생성`, `구현`, `적용`,
	`리팩토링`, `개선`, `업데이트`, `fix`, `add`, `remove`,
	`update`, `create`, `implement`, `refactor`,
)

var targetPatterns = compileAll(
	`파일`, `함수`, `클래스`, `메서드`, `모듈`, `변수`, `상수`,
	`API`, `엔드포인트`, `라우트`, `컴포넌트`, `테스트`,
	`file`, `function`, `class`, `method`, `module`, `\.py`,
	`\.js`, `\.ts`, `\.go`, `\.json`,
)

var diffHeaderPattern = regexp.MustCompile(`(?m)^[-+@]`)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

const (
	coderSummaryMinLen  = 10
	coderDiffMinLen     = 20
	councilReasoningMin = 20
	securityScoreMin    = 0
	securityScoreMax    = 10
)

// Check validates a typed output against the semantic rules of its
// role. A nil return means the output carries real content.
func Check(out contract.AgentOutput) error {
	if err := checkSemanticNull(out); err != nil {
		return err
	}

	switch o := out.(type) {
	case *contract.CoderOutput:
		return checkCoder(o)
	case *contract.QAOutput:
		return checkQA(o)
	case *contract.ReviewerOutput:
		return checkReviewer(o)
	case *contract.CouncilMemberOutput:
		return checkCouncil(o)
	}
	return nil
}

// checkSemanticNull scans the serialized output for blacklist phrases.
// Matching the whole serialization catches boilerplate wherever the
// model hides it, not just in the summary.
func checkSemanticNull(out contract.AgentOutput) error {
	serialized, err := json.Marshal(out)
	if err != nil {
		return &Violation{Kind: models.ErrKindInvalidValue, Detail: "output not serializable"}
	}
	text := string(serialized)
	for _, p := range nullPatterns {
		if p.MatchString(text) {
			return &Violation{
				Kind:   models.ErrKindSemanticNull,
				Detail: fmt.Sprintf("vacuous phrase matching %q", p.String()),
			}
		}
	}
	return nil
}

func checkCoder(o *contract.CoderOutput) error {
	if len([]rune(o.Summary)) < coderSummaryMinLen {
		return &Violation{Kind: models.ErrKindFieldTooShort, Field: "summary",
			Detail: fmt.Sprintf("shorter than %d chars", coderSummaryMinLen)}
	}
	if !matchesAny(o.Summary, verbPatterns) {
		return &Violation{Kind: models.ErrKindSemanticNull, Field: "summary",
			Detail: "names no action verb"}
	}
	if !matchesAny(o.Summary, targetPatterns) {
		return &Violation{Kind: models.ErrKindSemanticNull, Field: "summary",
			Detail: "names no target"}
	}
	if len([]rune(o.Diff)) < coderDiffMinLen {
		return &Violation{Kind: models.ErrKindFieldTooShort, Field: "diff",
			Detail: fmt.Sprintf("shorter than %d chars", coderDiffMinLen)}
	}
	if !diffHeaderPattern.MatchString(o.Diff) {
		return &Violation{Kind: models.ErrKindInvalidValue, Field: "diff",
			Detail: "does not begin with a unified-diff header"}
	}
	if o.Diff != "" && len(o.FilesChanged) == 0 {
		return &Violation{Kind: models.ErrKindInvalidValue, Field: "files_changed",
			Detail: "empty despite a non-empty diff"}
	}
	return nil
}

func checkQA(o *contract.QAOutput) error {
	switch o.Verdict {
	case models.VerdictPass, models.VerdictFail, models.VerdictSkip:
	default:
		return &Violation{Kind: models.ErrKindInvalidValue, Field: "verdict",
			Detail: fmt.Sprintf("%q not in PASS/FAIL/SKIP", o.Verdict)}
	}
	if o.Verdict == models.VerdictPass && len(o.Tests) == 0 {
		return &Violation{Kind: models.ErrKindInvalidValue, Field: "tests",
			Detail: "empty despite a PASS verdict"}
	}
	return nil
}

func checkReviewer(o *contract.ReviewerOutput) error {
	switch o.Verdict {
	case models.VerdictApprove, models.VerdictRevise, models.VerdictReject:
	default:
		return &Violation{Kind: models.ErrKindInvalidValue, Field: "verdict",
			Detail: fmt.Sprintf("%q not in APPROVE/REVISE/REJECT", o.Verdict)}
	}
	if o.SecurityScore < securityScoreMin || o.SecurityScore > securityScoreMax {
		return &Violation{Kind: models.ErrKindInvalidValue, Field: "security_score",
			Detail: fmt.Sprintf("%d outside %d-%d", o.SecurityScore, securityScoreMin, securityScoreMax)}
	}
	if o.Verdict == models.VerdictReject && len(o.Risks) == 0 {
		return &Violation{Kind: models.ErrKindInvalidValue, Field: "risks",
			Detail: "empty despite a REJECT verdict"}
	}
	return nil
}

func checkCouncil(o *contract.CouncilMemberOutput) error {
	if o.Score < 0 || o.Score > 10 {
		return &Violation{Kind: models.ErrKindInvalidValue, Field: "score",
			Detail: fmt.Sprintf("%.1f outside 0-10", o.Score)}
	}
	if len([]rune(o.Reasoning)) < councilReasoningMin {
		return &Violation{Kind: models.ErrKindFieldTooShort, Field: "reasoning",
			Detail: fmt.Sprintf("shorter than %d chars", councilReasoningMin)}
	}
	return nil
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// ContainsNullPhrase reports whether free text matches the blacklist.
// The decision machine uses this for PM summary confidence scoring.
func ContainsNullPhrase(text string) bool {
	for _, p := range nullPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
