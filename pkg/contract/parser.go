package contract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/maestroworks/maestro/pkg/models"
)

// Extraction patterns, tried in order. A fenced ```json block wins over
// a bare object; a bare object wins over treating the whole completion
// as JSON.
var (
	fencedJSONPattern = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	bareObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)
)

// verdictTailBytes bounds the degraded-parse scan to the end of the
// completion, where models place their final judgement.
const verdictTailBytes = 512

// Meta carries parse provenance for the event log.
type Meta struct {
	DegradedParse bool   `json:"degraded_parse,omitempty"`
	RawVerdict    string `json:"raw_verdict,omitempty"`
}

// roleFields maps each schema-bearing role to its expected and required
// top-level keys. Roles absent here pass through as GenericOutput.
var roleFields = map[models.Role]struct {
	expected []string
	required []string
}{
	models.RoleCoder: {
		expected: []string{"summary", "files_changed", "diff", "todo_next"},
		required: []string{"summary", "files_changed", "diff"},
	},
	models.RoleQA: {
		expected: []string{"verdict", "tests", "coverage_summary", "issues_found"},
		required: []string{"verdict", "tests"},
	},
	models.RoleReviewer: {
		expected: []string{"verdict", "risks", "security_score", "approved_files", "blocked_files"},
		required: []string{"verdict", "security_score"},
	},
	models.RoleStrategist: {
		expected: []string{"problem_summary", "options", "recommendation", "reasoning"},
		required: []string{"problem_summary", "options", "recommendation", "reasoning"},
	},
	models.RolePM: {
		expected: []string{"action", "tasks", "summary", "requires_ceo"},
		required: []string{"action", "summary"},
	},
	models.RoleCouncil: {
		expected: []string{"score", "reasoning", "concerns", "approvals"},
		required: []string{"score", "reasoning"},
	},
	models.RoleStamp: {
		expected: []string{"verdict", "score", "blocking_issues", "requires_escalation"},
		required: []string{"verdict"},
	},
}

// ExtractJSON pulls the JSON body out of a completion. Preference
// order: fenced json block, first bare object whose keys intersect the
// role's expected field set, the trimmed completion itself.
func ExtractJSON(raw string, role models.Role) string {
	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := bareObjectPattern.FindString(raw); m != "" {
		if keysIntersect(m, role) {
			return strings.TrimSpace(m)
		}
	}
	return strings.TrimSpace(raw)
}

// keysIntersect reports whether candidate parses as an object sharing
// at least one key with the role's expected field set. Roles without a
// schema accept any object.
func keysIntersect(candidate string, role models.Role) bool {
	fields, ok := roleFields[role]
	if !ok {
		return true
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return true // let the real parse report the failure
	}
	for _, key := range fields.expected {
		if _, present := probe[key]; present {
			return true
		}
	}
	return false
}

// Parse converts a raw completion into the role's typed output.
// Failures are *ParseFailure; callers feed them to the escalator.
func Parse(role models.Role, raw string) (AgentOutput, Meta, error) {
	fields, hasSchema := roleFields[role]
	if !hasSchema {
		out := &GenericOutput{Role: role, Text: strings.TrimSpace(raw)}
		if err := out.Validate(); err != nil {
			return nil, Meta{}, err
		}
		return out, Meta{}, nil
	}

	jsonStr := ExtractJSON(raw, role)

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &keys); err != nil {
		return degradedFallback(role, raw,
			newParseFailure(models.ErrKindJSONParse, "no JSON object in completion"))
	}

	var missing []string
	for _, key := range fields.required {
		if _, present := keys[key]; !present {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, Meta{}, newParseFailure(models.ErrKindJSONParse, "required fields absent", missing...)
	}

	out, err := unmarshalFor(role, jsonStr)
	if err != nil {
		return nil, Meta{}, newParseFailure(models.ErrKindJSONParse, err.Error())
	}

	meta := Meta{RawVerdict: canonicalizeVerdict(role, out)}
	if err := out.Validate(); err != nil {
		return nil, meta, err
	}
	return out, meta, nil
}

func unmarshalFor(role models.Role, jsonStr string) (AgentOutput, error) {
	var out AgentOutput
	switch role {
	case models.RoleCoder:
		out = &CoderOutput{}
	case models.RoleQA:
		out = &QAOutput{}
	case models.RoleReviewer:
		out = &ReviewerOutput{}
	case models.RoleStrategist:
		out = &StrategistOutput{}
	case models.RolePM:
		out = &PMOutput{}
	case models.RoleCouncil:
		out = &CouncilMemberOutput{}
	case models.RoleStamp:
		out = &StampOutput{}
	}
	if err := json.Unmarshal([]byte(jsonStr), out); err != nil {
		return nil, err
	}
	return out, nil
}

// canonicalizeVerdict rewrites alias verdict tokens (SHIP, DONE, HOLD,
// NEED_INFO, …) to the role's canonical vocabulary and returns the
// original token for the metadata record.
func canonicalizeVerdict(role models.Role, out AgentOutput) string {
	switch o := out.(type) {
	case *QAOutput:
		raw := string(o.Verdict)
		o.Verdict = canonicalFor(models.RoleQA, raw)
		return raw
	case *ReviewerOutput:
		raw := string(o.Verdict)
		o.Verdict = canonicalFor(models.RoleReviewer, raw)
		return raw
	case *StampOutput:
		raw := string(o.Verdict)
		o.Verdict = canonicalFor(models.RoleStamp, raw)
		return raw
	}
	return ""
}

// canonicalFor maps an arbitrary verdict token to the role's canonical
// vocabulary. Unknown tokens pass through unchanged so validation can
// report them.
func canonicalFor(role models.Role, raw string) models.Verdict {
	token := models.Verdict(strings.ToUpper(strings.TrimSpace(raw)))
	switch role {
	case models.RoleQA:
		if token == models.VerdictSkip {
			return models.VerdictSkip
		}
		if token.IsApproveClass() {
			return models.VerdictPass
		}
		if token.IsReviseClass() {
			return models.VerdictFail
		}
	case models.RoleReviewer:
		if token == models.VerdictReject {
			return models.VerdictReject
		}
		if token.IsApproveClass() {
			return models.VerdictApprove
		}
		if token.IsReviseClass() {
			return models.VerdictRevise
		}
	case models.RoleStamp:
		if token.IsApproveClass() {
			return models.VerdictApprove
		}
		if token.IsReviseClass() {
			return models.VerdictReject
		}
	}
	return token
}

// verdict tokens scanned during degraded parse, longest first so that
// NEED_INFO is not shadowed by a shorter match.
var fallbackTokens = []string{
	"NEED_INFO", "APPROVE", "REVISE", "REJECT", "PASS", "FAIL", "SKIP", "SHIP", "HOLD", "DONE",
}

// degradedFallback scans the tail of the completion for a bare verdict
// token and synthesizes a verdict-only output. Only verdict-bearing
// roles degrade; everything else surfaces the original failure.
func degradedFallback(role models.Role, raw string, failure *ParseFailure) (AgentOutput, Meta, error) {
	switch role {
	case models.RoleQA, models.RoleReviewer, models.RoleStamp:
	default:
		return nil, Meta{}, failure
	}

	tail := raw
	if len(tail) > verdictTailBytes {
		tail = tail[len(tail)-verdictTailBytes:]
	}
	tail = strings.ToUpper(tail)

	found := ""
	foundAt := -1
	for _, token := range fallbackTokens {
		if at := strings.LastIndex(tail, token); at > foundAt {
			found, foundAt = token, at
		}
	}
	if found == "" {
		return nil, Meta{}, failure
	}

	verdict := canonicalFor(role, found)
	meta := Meta{DegradedParse: true, RawVerdict: found}

	var out AgentOutput
	switch role {
	case models.RoleQA:
		out = &QAOutput{Verdict: verdict}
	case models.RoleReviewer:
		out = &ReviewerOutput{Verdict: verdict}
	case models.RoleStamp:
		out = &StampOutput{Verdict: verdict}
	}
	if err := out.Validate(); err != nil {
		return nil, meta, failure
	}
	return out, meta, nil
}
